package models

// State is a complete, immutable version of the store. Slices are shared
// between versions and must not be modified by readers; the store always
// builds new slices when it changes something.
type State struct {
	Notes   []Note
	Folders []Folder
	Tags    []Tag

	// ActiveNoteID is the focused note, "" when none.
	ActiveNoteID string
	Filter       Filter
	SearchQuery  string
}

// ActiveFolderID is the folder filter, "" when unset.
func (s State) ActiveFolderID() string { return s.Filter.FolderID() }

// ActiveTagID is the tag filter, "" when unset.
func (s State) ActiveTagID() string { return s.Filter.TagID() }

func (s State) Note(id string) (Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (s State) Folder(id string) (Folder, bool) {
	for _, f := range s.Folders {
		if f.ID == id {
			return f, true
		}
	}
	return Folder{}, false
}

func (s State) Tag(id string) (Tag, bool) {
	for _, t := range s.Tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

// ActiveNote resolves ActiveNoteID.
func (s State) ActiveNote() (Note, bool) {
	if s.ActiveNoteID == "" {
		return Note{}, false
	}
	return s.Note(s.ActiveNoteID)
}

// NotesInFolder returns the folder's notes in insertion order.
func (s State) NotesInFolder(folderID string) []Note {
	var out []Note
	for _, n := range s.Notes {
		if n.FolderID == folderID {
			out = append(out, n)
		}
	}
	return out
}

// NoteTags resolves a note's tag ids in tag collection order,
// skipping ids that no longer resolve.
func (s State) NoteTags(noteID string) []Tag {
	n, ok := s.Note(noteID)
	if !ok {
		return nil
	}
	var out []Tag
	for _, t := range s.Tags {
		if n.HasTag(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// HasID reports whether id is used by any note, folder or tag.
func (s State) HasID(id string) bool {
	if _, ok := s.Note(id); ok {
		return true
	}
	if _, ok := s.Folder(id); ok {
		return true
	}
	_, ok := s.Tag(id)
	return ok
}
