package store

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/models"
)

// VisibleNotes is the note list as shown to the user: narrowed by the
// active filter and search query, most recently updated first. Notes with
// equal UpdatedAt keep their insertion order.
func VisibleNotes(st models.State) []models.Note {
	query := strings.ToLower(st.SearchQuery)

	out := make([]models.Note, 0, len(st.Notes))
	for _, n := range st.Notes {
		switch st.Filter.Kind() {
		case models.FilterFolder:
			if n.FolderID != st.Filter.FolderID() {
				continue
			}
		case models.FilterTag:
			if !n.HasTag(st.Filter.TagID()) {
				continue
			}
		}
		if query != "" && !matches(n, query) {
			continue
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b models.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

func matches(n models.Note, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery)
}

// AvailableTags lists the tags that could still be added to a note, in tag
// collection order, narrowed to names containing query (case-insensitive).
// An unknown note yields nil.
func AvailableTags(st models.State, noteID, query string) []models.Tag {
	n, ok := st.Note(noteID)
	if !ok {
		return nil
	}
	query = strings.ToLower(query)

	var out []models.Tag
	for _, t := range st.Tags {
		if n.HasTag(t.ID) {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Name), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FolderIndex maps folder ids to folders.
func FolderIndex(st models.State) map[string]models.Folder {
	m := make(map[string]models.Folder, len(st.Folders))
	for _, f := range st.Folders {
		m[f.ID] = f
	}
	return m
}

// TagIndex maps tag ids to tags.
func TagIndex(st models.State) map[string]models.Tag {
	m := make(map[string]models.Tag, len(st.Tags))
	for _, t := range st.Tags {
		m[t.ID] = t
	}
	return m
}
