package store

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/logging"
)

// DefaultFolderName is used by QuickCreateNote when no folder exists yet.
const DefaultFolderName = "My Notes"

// NoteUpdate lists the note fields to overwrite. Nil fields are left alone.
type NoteUpdate struct {
	Title   *string
	Content *string
	// FolderID moves the note; ignored unless the folder exists.
	FolderID *string
	// TagIDs replaces the tag set; unknown and repeated ids are dropped.
	TagIDs *[]string
}

// TagUpdate lists the tag fields to overwrite. Nil fields are left alone.
type TagUpdate struct {
	Name  *string
	Color *models.Color
}

// Store owns the note/folder/tag state. Build it with New.
type Store struct {
	// mu serializes operations, including their save and notify steps.
	mu    sync.Mutex
	state atomic.Pointer[models.State]

	closed       bool
	listeners    map[int]Listener
	nextListener int

	saver       Saver
	logger      logging.Logger
	now         func() time.Time
	ids         IDGenerator
	saveTimeout time.Duration
}

// New returns a Store holding initial, typically the state loaded from the
// last snapshot.
func New(initial models.State, opts ...Option) *Store {
	s := &Store{
		listeners:   make(map[int]Listener),
		logger:      logging.Discard(),
		now:         time.Now,
		ids:         UUIDGenerator{},
		saveTimeout: DefaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(&initial)
	return s
}

// State returns the current state. It is safe to call from listeners.
func (s *Store) State() models.State {
	return *s.state.Load()
}

// Visible is VisibleNotes of the current state.
func (s *Store) Visible() []models.Note {
	return VisibleNotes(s.State())
}

// Subscribe registers fn for every later commit and returns a function that
// removes it again.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close writes a final snapshot and drops all listeners. Later mutations
// are ignored. Close is the one place where a save error is returned.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	clear(s.listeners)

	if s.saver == nil {
		return nil
	}
	return s.saver.Save(ctx, s.State())
}

// commit runs fn against the current state and, if fn reports a change,
// installs the result, saves it and notifies listeners.
func (s *Store) commit(op string, fn func(st models.State) (models.State, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	next, changed := fn(s.State())
	if !changed {
		return
	}
	s.state.Store(&next)

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	s.logger.Debug(ctx, "state committed", "op", op)
	if s.saver != nil {
		if err := s.saver.Save(ctx, next); err != nil {
			s.logger.Warn(ctx, "snapshot write failed", "op", op, "error", err)
		}
	}

	for _, id := range s.listenerOrder() {
		s.listeners[id](next)
	}
}

// listenerOrder returns listener ids in subscription order.
func (s *Store) listenerOrder() []int {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// touch returns the refreshed UpdatedAt for n, never earlier than CreatedAt.
func (s *Store) touch(n models.Note) time.Time {
	now := s.now()
	if now.Before(n.CreatedAt) {
		return n.CreatedAt
	}
	return now
}

// Notes

// CreateNote adds an empty note to folderID and makes it the active note.
// It returns the new id, or "" if the folder does not exist.
func (s *Store) CreateNote(folderID string) string {
	var id string
	s.commit("create_note", func(st models.State) (models.State, bool) {
		if _, ok := st.Folder(folderID); !ok {
			return st, false
		}
		st, id = s.addNote(st, folderID)
		return st, true
	})
	return id
}

// QuickCreateNote creates a note in the active folder, else in the first
// folder, else in a new "My Notes" folder. It returns the note id.
func (s *Store) QuickCreateNote() string {
	var id string
	s.commit("quick_create_note", func(st models.State) (models.State, bool) {
		folderID := st.ActiveFolderID()
		switch {
		case folderID != "":
		case len(st.Folders) > 0:
			folderID = st.Folders[0].ID
		default:
			st, folderID = s.addFolder(st, DefaultFolderName)
		}
		st, id = s.addNote(st, folderID)
		return st, true
	})
	return id
}

func (s *Store) addNote(st models.State, folderID string) (models.State, string) {
	now := s.now()
	n := models.Note{
		ID:        s.allocID(st),
		Title:     models.DefaultNoteTitle,
		FolderID:  folderID,
		TagIDs:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.Notes = append(slices.Clip(st.Notes), n)
	st.ActiveNoteID = n.ID
	return st, n.ID
}

// UpdateNote overwrites the fields set in u and refreshes UpdatedAt.
func (s *Store) UpdateNote(noteID string, u NoteUpdate) {
	s.commit("update_note", func(st models.State) (models.State, bool) {
		i := noteIndex(st.Notes, noteID)
		if i < 0 {
			return st, false
		}

		n := st.Notes[i]
		if u.Title != nil {
			n.Title = *u.Title
		}
		if u.Content != nil {
			n.Content = *u.Content
		}
		if u.FolderID != nil {
			if _, ok := st.Folder(*u.FolderID); ok {
				n.FolderID = *u.FolderID
			}
		}
		if u.TagIDs != nil {
			n.TagIDs = existingTags(st, *u.TagIDs)
		}
		n.UpdatedAt = s.touch(n)

		st.Notes = replaceAt(st.Notes, i, n)
		return st, true
	})
}

// DeleteNote removes a note, unsetting it as active note if needed.
func (s *Store) DeleteNote(noteID string) {
	s.commit("delete_note", func(st models.State) (models.State, bool) {
		if noteIndex(st.Notes, noteID) < 0 {
			return st, false
		}
		st.Notes = slices.DeleteFunc(slices.Clone(st.Notes), func(n models.Note) bool {
			return n.ID == noteID
		})
		if st.ActiveNoteID == noteID {
			st.ActiveNoteID = ""
		}
		return st, true
	})
}

// SetActiveNoteID focuses a note; "" clears the focus. Unknown ids are ignored.
func (s *Store) SetActiveNoteID(noteID string) {
	s.commit("set_active_note", func(st models.State) (models.State, bool) {
		if noteID != "" && noteIndex(st.Notes, noteID) < 0 {
			return st, false
		}
		if st.ActiveNoteID == noteID {
			return st, false
		}
		st.ActiveNoteID = noteID
		return st, true
	})
}

// Folders

// CreateFolder adds a folder and makes it the active filter. It returns the
// new id.
func (s *Store) CreateFolder(name string) string {
	var id string
	s.commit("create_folder", func(st models.State) (models.State, bool) {
		st, id = s.addFolder(st, name)
		return st, true
	})
	return id
}

func (s *Store) addFolder(st models.State, name string) (models.State, string) {
	f := models.Folder{ID: s.allocID(st), Name: name}
	st.Folders = append(slices.Clip(st.Folders), f)
	st.Filter = models.ByFolder(f.ID)
	return st, f.ID
}

// UpdateFolder renames a folder.
func (s *Store) UpdateFolder(folderID, name string) {
	s.commit("update_folder", func(st models.State) (models.State, bool) {
		i := slices.IndexFunc(st.Folders, func(f models.Folder) bool { return f.ID == folderID })
		if i < 0 || st.Folders[i].Name == name {
			return st, false
		}
		f := st.Folders[i]
		f.Name = name
		st.Folders = replaceAt(st.Folders, i, f)
		return st, true
	})
}

// DeleteFolder removes a folder together with every note filed in it.
func (s *Store) DeleteFolder(folderID string) {
	s.commit("delete_folder", func(st models.State) (models.State, bool) {
		if _, ok := st.Folder(folderID); !ok {
			return st, false
		}

		st.Folders = slices.DeleteFunc(slices.Clone(st.Folders), func(f models.Folder) bool {
			return f.ID == folderID
		})
		st.Notes = slices.DeleteFunc(slices.Clone(st.Notes), func(n models.Note) bool {
			return n.FolderID == folderID
		})
		if st.ActiveFolderID() == folderID {
			st.Filter = models.NoFilter()
		}
		if st.ActiveNoteID != "" && noteIndex(st.Notes, st.ActiveNoteID) < 0 {
			st.ActiveNoteID = ""
		}
		return st, true
	})
}

// SetActiveFolderID filters the list by folder, replacing any tag filter.
// "" clears filtering altogether. Unknown ids are ignored.
func (s *Store) SetActiveFolderID(folderID string) {
	s.commit("set_active_folder", func(st models.State) (models.State, bool) {
		if folderID != "" {
			if _, ok := st.Folder(folderID); !ok {
				return st, false
			}
		}
		return setFilter(st, models.ByFolder(folderID))
	})
}

// Tags

// CreateTag adds a tag. The color is stored as given. It returns the new id.
func (s *Store) CreateTag(name string, color models.Color) string {
	var id string
	s.commit("create_tag", func(st models.State) (models.State, bool) {
		id = s.allocID(st)
		st.Tags = append(slices.Clip(st.Tags), models.Tag{ID: id, Name: name, Color: color})
		return st, true
	})
	return id
}

// UpdateTag overwrites the fields set in u.
func (s *Store) UpdateTag(tagID string, u TagUpdate) {
	s.commit("update_tag", func(st models.State) (models.State, bool) {
		i := slices.IndexFunc(st.Tags, func(t models.Tag) bool { return t.ID == tagID })
		if i < 0 {
			return st, false
		}
		t := st.Tags[i]
		if u.Name != nil {
			t.Name = *u.Name
		}
		if u.Color != nil {
			t.Color = *u.Color
		}
		if t == st.Tags[i] {
			return st, false
		}
		st.Tags = replaceAt(st.Tags, i, t)
		return st, true
	})
}

// DeleteTag removes a tag and strips it from every note carrying it. The
// notes' UpdatedAt is left alone.
func (s *Store) DeleteTag(tagID string) {
	s.commit("delete_tag", func(st models.State) (models.State, bool) {
		if _, ok := st.Tag(tagID); !ok {
			return st, false
		}

		st.Tags = slices.DeleteFunc(slices.Clone(st.Tags), func(t models.Tag) bool {
			return t.ID == tagID
		})

		notes := slices.Clone(st.Notes)
		for i, n := range notes {
			if n.HasTag(tagID) {
				n.TagIDs = without(n.TagIDs, tagID)
				notes[i] = n
			}
		}
		st.Notes = notes

		if st.ActiveTagID() == tagID {
			st.Filter = models.NoFilter()
		}
		return st, true
	})
}

// SetActiveTagID filters the list by tag, replacing any folder filter.
// "" clears filtering altogether. Unknown ids are ignored.
func (s *Store) SetActiveTagID(tagID string) {
	s.commit("set_active_tag", func(st models.State) (models.State, bool) {
		if tagID != "" {
			if _, ok := st.Tag(tagID); !ok {
				return st, false
			}
		}
		return setFilter(st, models.ByTag(tagID))
	})
}

// AddTagToNote puts tagID into the note's tag set. Adding a tag the note
// already has, or an unknown tag, does nothing.
func (s *Store) AddTagToNote(noteID, tagID string) {
	s.commit("add_tag_to_note", func(st models.State) (models.State, bool) {
		i := noteIndex(st.Notes, noteID)
		if i < 0 || st.Notes[i].HasTag(tagID) {
			return st, false
		}
		if _, ok := st.Tag(tagID); !ok {
			return st, false
		}

		n := st.Notes[i]
		n.TagIDs = append(slices.Clip(n.TagIDs), tagID)
		n.UpdatedAt = s.touch(n)
		st.Notes = replaceAt(st.Notes, i, n)
		return st, true
	})
}

// RemoveTagFromNote takes tagID out of the note's tag set, if present.
func (s *Store) RemoveTagFromNote(noteID, tagID string) {
	s.commit("remove_tag_from_note", func(st models.State) (models.State, bool) {
		i := noteIndex(st.Notes, noteID)
		if i < 0 || !st.Notes[i].HasTag(tagID) {
			return st, false
		}

		n := st.Notes[i]
		n.TagIDs = without(n.TagIDs, tagID)
		n.UpdatedAt = s.touch(n)
		st.Notes = replaceAt(st.Notes, i, n)
		return st, true
	})
}

// Search & selection

// SetSearchQuery sets the free-text filter as given.
func (s *Store) SetSearchQuery(query string) {
	s.commit("set_search_query", func(st models.State) (models.State, bool) {
		if st.SearchQuery == query {
			return st, false
		}
		st.SearchQuery = query
		return st, true
	})
}

// ClearSearch empties the search query.
func (s *Store) ClearSearch() {
	s.SetSearchQuery("")
}

// ClearActiveSelections unsets the active note, the filter and the query.
func (s *Store) ClearActiveSelections() {
	s.commit("clear_active_selections", func(st models.State) (models.State, bool) {
		if st.ActiveNoteID == "" && st.Filter == models.NoFilter() && st.SearchQuery == "" {
			return st, false
		}
		st.ActiveNoteID = ""
		st.Filter = models.NoFilter()
		st.SearchQuery = ""
		return st, true
	})
}

func setFilter(st models.State, f models.Filter) (models.State, bool) {
	if st.Filter == f {
		return st, false
	}
	st.Filter = f
	return st, true
}

func noteIndex(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}

// replaceAt returns a copy of items with items[i] set to v.
func replaceAt[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

func without(ids []string, id string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(x string) bool { return x == id })
}

// existingTags keeps the ids that name a tag, first occurrence only.
func existingTags(st models.State, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if slices.Contains(out, id) {
			continue
		}
		if _, ok := st.Tag(id); ok {
			out = append(out, id)
		}
	}
	return out
}
