package models

// FilterKind tells which dimension, if any, narrows the note list.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterFolder
	FilterTag
)

// Filter is the active list filter: nothing, one folder, or one tag.
// Folder and tag filtering are exclusive by construction.
type Filter struct {
	kind FilterKind
	id   string
}

// NoFilter shows every note.
func NoFilter() Filter { return Filter{} }

// ByFolder narrows the list to one folder. An empty id means NoFilter.
func ByFolder(folderID string) Filter {
	if folderID == "" {
		return Filter{}
	}
	return Filter{kind: FilterFolder, id: folderID}
}

// ByTag narrows the list to notes carrying one tag. An empty id means NoFilter.
func ByTag(tagID string) Filter {
	if tagID == "" {
		return Filter{}
	}
	return Filter{kind: FilterTag, id: tagID}
}

func (f Filter) Kind() FilterKind { return f.kind }

// FolderID returns the filtered folder, or "" when not filtering by folder.
func (f Filter) FolderID() string {
	if f.kind != FilterFolder {
		return ""
	}
	return f.id
}

// TagID returns the filtered tag, or "" when not filtering by tag.
func (f Filter) TagID() string {
	if f.kind != FilterTag {
		return ""
	}
	return f.id
}

func (f Filter) String() string {
	switch f.kind {
	case FilterFolder:
		return "folder:" + f.id
	case FilterTag:
		return "tag:" + f.id
	default:
		return "all"
	}
}
