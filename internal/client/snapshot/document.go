package snapshot

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/notemark/internal/client/models"
)

// envelope is the persisted document: the state wrapped with a version
// number, which is always written as 0 and ignored on read.
type envelope struct {
	State   document `json:"state"`
	Version int      `json:"version"`
}

type document struct {
	Notes          []noteDoc   `json:"notes"`
	Folders        []folderDoc `json:"folders"`
	Tags           []tagDoc    `json:"tags"`
	ActiveNoteID   *string     `json:"activeNoteId"`
	ActiveFolderID *string     `json:"activeFolderId"`
	ActiveTagID    *string     `json:"activeTagId"`
	SearchQuery    string      `json:"searchQuery"`
}

type noteDoc struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	TagIDs   []string `json:"tagIds"`
	// Milliseconds since the Unix epoch.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

type folderDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tagDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Encode renders st as the persisted JSON document.
func Encode(st models.State) ([]byte, error) {
	doc := document{
		Notes:          make([]noteDoc, 0, len(st.Notes)),
		Folders:        make([]folderDoc, 0, len(st.Folders)),
		Tags:           make([]tagDoc, 0, len(st.Tags)),
		ActiveNoteID:   optional(st.ActiveNoteID),
		ActiveFolderID: optional(st.ActiveFolderID()),
		ActiveTagID:    optional(st.ActiveTagID()),
		SearchQuery:    st.SearchQuery,
	}
	for _, n := range st.Notes {
		tagIDs := n.TagIDs
		if tagIDs == nil {
			tagIDs = []string{}
		}
		doc.Notes = append(doc.Notes, noteDoc{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			FolderID:  n.FolderID,
			TagIDs:    tagIDs,
			CreatedAt: n.CreatedAt.UnixMilli(),
			UpdatedAt: n.UpdatedAt.UnixMilli(),
		})
	}
	for _, f := range st.Folders {
		doc.Folders = append(doc.Folders, folderDoc{ID: f.ID, Name: f.Name})
	}
	for _, t := range st.Tags {
		doc.Tags = append(doc.Tags, tagDoc{ID: t.ID, Name: t.Name, Color: string(t.Color)})
	}

	b, err := json.Marshal(envelope{State: doc})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a persisted document and checks it can seed a store.
//
// References that can be dropped without losing data are repaired: unknown
// or repeated tag ids on a note, a dangling active note or filter, and an
// UpdatedAt earlier than CreatedAt. A note filed under a missing folder, or
// an id used twice, makes the document malformed.
func Decode(b []byte) (models.State, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return models.State{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	doc := env.State

	st := models.State{
		Notes:       make([]models.Note, 0, len(doc.Notes)),
		Folders:     make([]models.Folder, 0, len(doc.Folders)),
		Tags:        make([]models.Tag, 0, len(doc.Tags)),
		SearchQuery: doc.SearchQuery,
	}

	ids := make(map[string]struct{})
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%w: %s with empty id", ErrMalformed, kind)
		}
		if _, dup := ids[id]; dup {
			return fmt.Errorf("%w: id %q used twice", ErrMalformed, id)
		}
		ids[id] = struct{}{}
		return nil
	}

	for _, f := range doc.Folders {
		if err := claim("folder", f.ID); err != nil {
			return models.State{}, err
		}
		st.Folders = append(st.Folders, models.Folder{ID: f.ID, Name: f.Name})
	}
	for _, t := range doc.Tags {
		if err := claim("tag", t.ID); err != nil {
			return models.State{}, err
		}
		st.Tags = append(st.Tags, models.Tag{ID: t.ID, Name: t.Name, Color: models.Color(t.Color)})
	}
	for _, n := range doc.Notes {
		if err := claim("note", n.ID); err != nil {
			return models.State{}, err
		}
		if _, ok := st.Folder(n.FolderID); !ok {
			return models.State{}, fmt.Errorf("%w: note %q in unknown folder %q", ErrMalformed, n.ID, n.FolderID)
		}

		tagIDs := make([]string, 0, len(n.TagIDs))
		for _, id := range n.TagIDs {
			if _, ok := st.Tag(id); !ok {
				continue
			}
			if slices.Contains(tagIDs, id) {
				continue
			}
			tagIDs = append(tagIDs, id)
		}

		created := fromMillis(n.CreatedAt)
		updated := fromMillis(n.UpdatedAt)
		if updated.Before(created) {
			updated = created
		}

		st.Notes = append(st.Notes, models.Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			FolderID:  n.FolderID,
			TagIDs:    tagIDs,
			CreatedAt: created,
			UpdatedAt: updated,
		})
	}

	if id := deref(doc.ActiveNoteID); id != "" {
		if _, ok := st.Note(id); ok {
			st.ActiveNoteID = id
		}
	}

	// Older documents may carry both filters; the folder wins.
	if id := deref(doc.ActiveFolderID); id != "" {
		if _, ok := st.Folder(id); ok {
			st.Filter = models.ByFolder(id)
		}
	}
	if id := deref(doc.ActiveTagID); id != "" && st.Filter == models.NoFilter() {
		if _, ok := st.Tag(id); ok {
			st.Filter = models.ByTag(id)
		}
	}

	return st, nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
