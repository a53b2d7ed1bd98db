package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/logging"
	"github.com/dmitrijs2005/notemark/internal/markdown"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeClock advances by one second on every read unless step is changed.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newClock() *fakeClock { return &fakeClock{now: t0, step: time.Second} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id%d", g.n)
}

type constIDs string

func (g constIDs) NewID() string { return string(g) }

type recordingSaver struct {
	mu     sync.Mutex
	states []models.State
	err    error
}

func (r *recordingSaver) Save(_ context.Context, st models.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
	return r.err
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()
	clock := newClock()
	base := []Option{WithClock(clock.Now), WithIDGenerator(&seqIDs{})}
	return New(models.State{}, append(base, opts...)...), clock
}

func ptr[T any](v T) *T { return &v }

func TestNew_EmptyState(t *testing.T) {
	s := New(models.State{})

	st := s.State()
	assert.Empty(t, st.Notes)
	assert.Empty(t, st.Folders)
	assert.Empty(t, st.Tags)
	assert.Empty(t, st.ActiveNoteID)
	assert.Equal(t, models.NoFilter(), st.Filter)
	assert.Empty(t, st.SearchQuery)
}

func TestCreateNote_DefaultsAndActive(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")

	id := s.CreateNote(folderID)
	require.NotEmpty(t, id)

	st := s.State()
	n, ok := st.Note(id)
	require.True(t, ok)
	assert.Equal(t, models.DefaultNoteTitle, n.Title)
	assert.Empty(t, n.Content)
	assert.Equal(t, folderID, n.FolderID)
	assert.NotNil(t, n.TagIDs)
	assert.Empty(t, n.TagIDs)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	assert.Equal(t, id, st.ActiveNoteID)
}

func TestCreateNote_UnknownFolder_NoOp(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	s.Subscribe(func(models.State) { calls++ })

	assert.Empty(t, s.CreateNote("missing"))
	assert.Empty(t, s.State().Notes)
	assert.Zero(t, calls)
}

func TestScenario_HelloNote(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	id := s.CreateNote(folderID)

	n, _ := s.State().Note(id)
	require.Equal(t, "Untitled Note", n.Title)
	require.Equal(t, "", n.Content)

	s.UpdateNote(id, NoteUpdate{Content: ptr("# Hello\n\nBody text")})

	n, _ = s.State().Note(id)
	assert.Equal(t, "Hello", markdown.ExtractTitle(n.Content))
	assert.Equal(t, "Body text", markdown.ExtractPreview(n.Content))
}

func TestUpdateNote_MergesFields(t *testing.T) {
	s, _ := newTestStore(t)
	work := s.CreateFolder("Work")
	home := s.CreateFolder("Home")
	red := s.CreateTag("Red", models.ColorPink)
	blue := s.CreateTag("Blue", models.ColorBlue)
	id := s.CreateNote(work)
	before, _ := s.State().Note(id)

	s.UpdateNote(id, NoteUpdate{Title: ptr("Plan")})
	n, _ := s.State().Note(id)
	assert.Equal(t, "Plan", n.Title)
	assert.Empty(t, n.Content)
	assert.Equal(t, work, n.FolderID)
	assert.True(t, n.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.CreatedAt, n.CreatedAt)

	s.UpdateNote(id, NoteUpdate{FolderID: ptr(home), TagIDs: &[]string{red, "missing", blue, red}})
	n, _ = s.State().Note(id)
	assert.Equal(t, "Plan", n.Title)
	assert.Equal(t, home, n.FolderID)
	assert.Equal(t, []string{red, blue}, n.TagIDs)
}

func TestUpdateNote_UnknownFolderIgnored(t *testing.T) {
	s, _ := newTestStore(t)
	work := s.CreateFolder("Work")
	id := s.CreateNote(work)

	s.UpdateNote(id, NoteUpdate{FolderID: ptr("missing"), Content: ptr("x")})

	n, _ := s.State().Note(id)
	assert.Equal(t, work, n.FolderID)
	assert.Equal(t, "x", n.Content)
}

func TestUpdateNote_UnknownID_NoOp(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateNote(s.CreateFolder("Work"))
	before := s.State()

	s.UpdateNote("missing", NoteUpdate{Title: ptr("x")})

	assert.Equal(t, before, s.State())
}

func TestUpdateNote_ClockBackwards_ClampedToCreatedAt(t *testing.T) {
	s, clock := newTestStore(t)
	id := s.CreateNote(s.CreateFolder("Work"))

	clock.step = -time.Hour
	s.UpdateNote(id, NoteUpdate{Title: ptr("back")})

	n, _ := s.State().Note(id)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestDeleteNote_ClearsActive_AndIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	keep := s.CreateNote(folderID)
	id := s.CreateNote(folderID)
	require.Equal(t, id, s.State().ActiveNoteID)

	s.DeleteNote(id)
	st := s.State()
	assert.Empty(t, st.ActiveNoteID)
	require.Len(t, st.Notes, 1)
	assert.Equal(t, keep, st.Notes[0].ID)

	s.DeleteNote(id)
	assert.Equal(t, st, s.State())
}

func TestDeleteNote_OtherNoteKeepsActive(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	other := s.CreateNote(folderID)
	active := s.CreateNote(folderID)

	s.DeleteNote(other)

	assert.Equal(t, active, s.State().ActiveNoteID)
}

func TestCreateFolder_BecomesActiveFilter(t *testing.T) {
	s, _ := newTestStore(t)
	tagID := s.CreateTag("Red", models.ColorPink)
	s.SetActiveTagID(tagID)

	id := s.CreateFolder("Work")

	st := s.State()
	assert.Equal(t, id, st.ActiveFolderID())
	assert.Empty(t, st.ActiveTagID())
	f, ok := st.Folder(id)
	require.True(t, ok)
	assert.Equal(t, "Work", f.Name)
}

func TestCreateFolder_EmptyNameAccepted(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateFolder("")
	f, ok := s.State().Folder(id)
	require.True(t, ok)
	assert.Empty(t, f.Name)
}

func TestUpdateFolder(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateFolder("Work")

	s.UpdateFolder(id, "Office")
	f, _ := s.State().Folder(id)
	assert.Equal(t, "Office", f.Name)

	before := s.State()
	s.UpdateFolder("missing", "x")
	assert.Equal(t, before, s.State())
}

func TestDeleteFolder_Cascades(t *testing.T) {
	s, _ := newTestStore(t)
	work := s.CreateFolder("Work")
	home := s.CreateFolder("Home")
	w1 := s.CreateNote(work)
	h1 := s.CreateNote(home)
	w2 := s.CreateNote(work)
	s.SetActiveFolderID(work)
	require.Equal(t, w2, s.State().ActiveNoteID)

	s.DeleteFolder(work)

	st := s.State()
	_, ok := st.Folder(work)
	assert.False(t, ok)
	require.Len(t, st.Notes, 1)
	assert.Equal(t, h1, st.Notes[0].ID)
	for _, id := range []string{w1, w2} {
		_, ok := st.Note(id)
		assert.False(t, ok, id)
	}
	assert.Empty(t, st.ActiveNoteID)
	assert.Equal(t, models.NoFilter(), st.Filter)
}

func TestDeleteFolder_UnrelatedSelectionKept(t *testing.T) {
	s, _ := newTestStore(t)
	work := s.CreateFolder("Work")
	home := s.CreateFolder("Home")
	s.CreateNote(work)
	active := s.CreateNote(home)
	s.SetActiveFolderID(home)

	s.DeleteFolder(work)

	st := s.State()
	assert.Equal(t, active, st.ActiveNoteID)
	assert.Equal(t, home, st.ActiveFolderID())
}

func TestCreateTag_NotActive(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateTag("Red", models.Color("crimson"))

	st := s.State()
	tag, ok := st.Tag(id)
	require.True(t, ok)
	assert.Equal(t, models.Tag{ID: id, Name: "Red", Color: "crimson"}, tag)
	assert.Equal(t, models.NoFilter(), st.Filter)
}

func TestUpdateTag_MergesFields(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateTag("Red", models.ColorPink)

	s.UpdateTag(id, TagUpdate{Color: ptr(models.ColorOrange)})
	tag, _ := s.State().Tag(id)
	assert.Equal(t, "Red", tag.Name)
	assert.Equal(t, models.ColorOrange, tag.Color)

	s.UpdateTag(id, TagUpdate{Name: ptr("Urgent")})
	tag, _ = s.State().Tag(id)
	assert.Equal(t, "Urgent", tag.Name)
	assert.Equal(t, models.ColorOrange, tag.Color)

	before := s.State()
	s.UpdateTag("missing", TagUpdate{Name: ptr("x")})
	assert.Equal(t, before, s.State())
}

func TestScenario_DeleteTag(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	red := s.CreateTag("Red", models.ColorPink)
	blue := s.CreateTag("Blue", models.ColorBlue)
	a := s.CreateNote(folderID)
	b := s.CreateNote(folderID)
	s.AddTagToNote(a, red)
	s.AddTagToNote(a, blue)
	s.AddTagToNote(b, blue)
	s.SetActiveTagID(red)
	before := s.State()

	s.DeleteTag(red)

	st := s.State()
	na, _ := st.Note(a)
	nb, _ := st.Note(b)
	assert.Equal(t, []string{blue}, na.TagIDs)
	assert.Equal(t, []string{blue}, nb.TagIDs)
	assert.Empty(t, st.ActiveTagID())
	_, ok := st.Tag(red)
	assert.False(t, ok)

	oldA, _ := before.Note(a)
	assert.Equal(t, oldA.UpdatedAt, na.UpdatedAt, "cascade leaves UpdatedAt alone")
}

func TestDeleteTag_OtherFilterKept(t *testing.T) {
	s, _ := newTestStore(t)
	red := s.CreateTag("Red", models.ColorPink)
	blue := s.CreateTag("Blue", models.ColorBlue)
	s.SetActiveTagID(blue)

	s.DeleteTag(red)

	assert.Equal(t, blue, s.State().ActiveTagID())
}

func TestFilter_Exclusive(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	tagID := s.CreateTag("Red", models.ColorPink)

	s.SetActiveTagID(tagID)
	st := s.State()
	assert.Equal(t, tagID, st.ActiveTagID())
	assert.Empty(t, st.ActiveFolderID())

	s.SetActiveFolderID(folderID)
	st = s.State()
	assert.Equal(t, folderID, st.ActiveFolderID())
	assert.Empty(t, st.ActiveTagID())

	s.SetActiveTagID("")
	assert.Equal(t, models.NoFilter(), s.State().Filter)
}

func TestSetActive_UnknownIDsIgnored(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	noteID := s.CreateNote(folderID)
	before := s.State()

	s.SetActiveFolderID("missing")
	s.SetActiveTagID("missing")
	s.SetActiveNoteID("missing")

	assert.Equal(t, before, s.State())
	assert.Equal(t, noteID, s.State().ActiveNoteID)
}

func TestSetActiveNoteID_SelectionOnly(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	first := s.CreateNote(folderID)
	s.CreateNote(folderID)
	s.SetSearchQuery("q")
	before := s.State()

	s.SetActiveNoteID(first)

	st := s.State()
	assert.Equal(t, first, st.ActiveNoteID)
	assert.Equal(t, before.Filter, st.Filter)
	assert.Equal(t, before.SearchQuery, st.SearchQuery)
	assert.Equal(t, before.Notes, st.Notes)

	s.SetActiveNoteID("")
	assert.Empty(t, s.State().ActiveNoteID)
}

func TestAddTagToNote_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	noteID := s.CreateNote(s.CreateFolder("Work"))
	tagID := s.CreateTag("Red", models.ColorPink)

	s.AddTagToNote(noteID, tagID)
	after1 := s.State()
	s.AddTagToNote(noteID, tagID)
	after2 := s.State()

	n, _ := after2.Note(noteID)
	assert.Equal(t, []string{tagID}, n.TagIDs)
	assert.Equal(t, after1, after2)
}

func TestAddTagToNote_RefreshesUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)
	noteID := s.CreateNote(s.CreateFolder("Work"))
	tagID := s.CreateTag("Red", models.ColorPink)
	before, _ := s.State().Note(noteID)

	s.AddTagToNote(noteID, tagID)

	n, _ := s.State().Note(noteID)
	assert.True(t, n.UpdatedAt.After(before.UpdatedAt))
}

func TestAddTagToNote_UnknownTagOrNote_NoOp(t *testing.T) {
	s, _ := newTestStore(t)
	noteID := s.CreateNote(s.CreateFolder("Work"))
	tagID := s.CreateTag("Red", models.ColorPink)
	before := s.State()

	s.AddTagToNote(noteID, "missing")
	s.AddTagToNote("missing", tagID)

	assert.Equal(t, before, s.State())
}

func TestRemoveTagFromNote_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	noteID := s.CreateNote(s.CreateFolder("Work"))
	red := s.CreateTag("Red", models.ColorPink)
	blue := s.CreateTag("Blue", models.ColorBlue)
	s.AddTagToNote(noteID, red)
	s.AddTagToNote(noteID, blue)

	s.RemoveTagFromNote(noteID, red)
	after1 := s.State()
	s.RemoveTagFromNote(noteID, red)

	n, _ := s.State().Note(noteID)
	assert.Equal(t, []string{blue}, n.TagIDs)
	assert.Equal(t, after1, s.State())
}

func TestSearch_SetAndClear(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetSearchQuery("  Mixed Case ")
	assert.Equal(t, "  Mixed Case ", s.State().SearchQuery)

	s.ClearSearch()
	assert.Empty(t, s.State().SearchQuery)
}

func TestClearActiveSelections(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	s.CreateNote(folderID)
	s.SetSearchQuery("q")

	s.ClearActiveSelections()

	st := s.State()
	assert.Empty(t, st.ActiveNoteID)
	assert.Equal(t, models.NoFilter(), st.Filter)
	assert.Empty(t, st.SearchQuery)
	assert.Len(t, st.Notes, 1)
	assert.Len(t, st.Folders, 1)
}

func TestQuickCreateNote(t *testing.T) {
	t.Run("no folders creates default", func(t *testing.T) {
		s, _ := newTestStore(t)

		id := s.QuickCreateNote()

		st := s.State()
		require.Len(t, st.Folders, 1)
		assert.Equal(t, DefaultFolderName, st.Folders[0].Name)
		n, ok := st.Note(id)
		require.True(t, ok)
		assert.Equal(t, st.Folders[0].ID, n.FolderID)
		assert.Equal(t, id, st.ActiveNoteID)
		assert.Equal(t, st.Folders[0].ID, st.ActiveFolderID())
	})

	t.Run("active folder", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.CreateFolder("Work")
		home := s.CreateFolder("Home")

		id := s.QuickCreateNote()

		n, _ := s.State().Note(id)
		assert.Equal(t, home, n.FolderID)
	})

	t.Run("first folder when none active", func(t *testing.T) {
		s, _ := newTestStore(t)
		work := s.CreateFolder("Work")
		s.CreateFolder("Home")
		s.SetActiveFolderID("")

		id := s.QuickCreateNote()

		n, _ := s.State().Note(id)
		assert.Equal(t, work, n.FolderID)
	})

	t.Run("single commit", func(t *testing.T) {
		s, _ := newTestStore(t)
		calls := 0
		s.Subscribe(func(models.State) { calls++ })

		s.QuickCreateNote()

		assert.Equal(t, 1, calls)
	})
}

func TestIDs_CollisionsResolved(t *testing.T) {
	s := New(models.State{}, WithIDGenerator(constIDs("dup")))

	f := s.CreateFolder("Work")
	n := s.CreateNote(f)
	tag := s.CreateTag("Red", models.ColorPink)

	assert.Equal(t, "dup", f)
	assert.Equal(t, "dup-1", n)
	assert.Equal(t, "dup-2", tag)
}

func TestIDs_DefaultGeneratorUnique(t *testing.T) {
	s := New(models.State{})
	seen := map[string]bool{}
	folderID := s.CreateFolder("Work")
	seen[folderID] = true
	for range 50 {
		id := s.CreateNote(folderID)
		require.False(t, seen[id], id)
		seen[id] = true
	}
}

func TestState_CopyOnWrite(t *testing.T) {
	s, _ := newTestStore(t)
	folderID := s.CreateFolder("Work")
	noteID := s.CreateNote(folderID)
	tagID := s.CreateTag("Red", models.ColorPink)
	old := s.State()
	oldNote, _ := old.Note(noteID)

	s.UpdateNote(noteID, NoteUpdate{Title: ptr("changed")})
	s.AddTagToNote(noteID, tagID)
	s.CreateNote(folderID)
	s.UpdateFolder(folderID, "Renamed")

	n, _ := old.Note(noteID)
	assert.Equal(t, oldNote, n)
	assert.Empty(t, n.TagIDs)
	assert.Len(t, old.Notes, 1)
	assert.Equal(t, "Work", old.Folders[0].Name)
}

func TestSubscribe_NotifiedInOrderBeforeReturn(t *testing.T) {
	s, _ := newTestStore(t)
	var got []string
	s.Subscribe(func(st models.State) { got = append(got, fmt.Sprintf("a:%d", len(st.Folders))) })
	s.Subscribe(func(st models.State) { got = append(got, fmt.Sprintf("b:%d", len(st.Folders))) })

	s.CreateFolder("Work")
	assert.Equal(t, []string{"a:1", "b:1"}, got)

	s.CreateFolder("Home")
	assert.Equal(t, []string{"a:1", "b:1", "a:2", "b:2"}, got)
}

func TestSubscribe_ListenerReadsState(t *testing.T) {
	s, _ := newTestStore(t)
	var seen models.State
	var received models.State
	s.Subscribe(func(st models.State) {
		received = st
		seen = s.State()
	})

	s.CreateFolder("Work")

	assert.Equal(t, received, seen)
	assert.Len(t, seen.Folders, 1)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	unsubscribe := s.Subscribe(func(models.State) { calls++ })

	s.CreateFolder("Work")
	unsubscribe()
	s.CreateFolder("Home")

	assert.Equal(t, 1, calls)
}

func TestSubscribe_NoOpNotNotified(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	s.Subscribe(func(models.State) { calls++ })

	s.DeleteNote("missing")
	s.DeleteFolder("missing")
	s.DeleteTag("missing")
	s.UpdateFolder("missing", "x")
	s.RemoveTagFromNote("missing", "missing")
	s.ClearSearch()
	s.ClearActiveSelections()
	s.SetActiveNoteID("")

	assert.Zero(t, calls)
}

func TestSaver_CalledOnEveryCommit(t *testing.T) {
	saver := &recordingSaver{}
	s, _ := newTestStore(t, WithSaver(saver))

	folderID := s.CreateFolder("Work")
	s.CreateNote(folderID)
	s.DeleteNote("missing")

	require.Equal(t, 2, saver.count())
	assert.Equal(t, s.State(), saver.states[1])
}

func TestSaver_FailureLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, logging.FormatJSON, "debug")
	require.NoError(t, err)
	saver := &recordingSaver{err: errors.New("disk full")}
	s, _ := newTestStore(t, WithSaver(saver), WithLogger(log))
	calls := 0
	s.Subscribe(func(models.State) { calls++ })

	id := s.CreateFolder("Work")

	_, ok := s.State().Folder(id)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "snapshot write failed")
	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), "create_folder")
}

type deadlineSaver struct {
	deadline time.Time
	ok       bool
}

func (d *deadlineSaver) Save(ctx context.Context, _ models.State) error {
	d.deadline, d.ok = ctx.Deadline()
	return nil
}

func TestSaver_ContextBoundedByTimeout(t *testing.T) {
	saver := &deadlineSaver{}
	s := New(models.State{}, WithSaver(saver), WithSaveTimeout(time.Minute))

	start := time.Now()
	s.CreateFolder("Work")

	require.True(t, saver.ok)
	assert.WithinDuration(t, start.Add(time.Minute), saver.deadline, 5*time.Second)
}

func TestClose_FinalSaveThenFrozen(t *testing.T) {
	saver := &recordingSaver{}
	s, _ := newTestStore(t, WithSaver(saver))
	calls := 0
	s.Subscribe(func(models.State) { calls++ })
	s.CreateFolder("Work")

	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, 2, saver.count())

	s.CreateFolder("Home")
	assert.Len(t, s.State().Folders, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, saver.count())

	require.NoError(t, s.Close(context.Background()))
	assert.Equal(t, 2, saver.count())
}

func TestClose_ReturnsSaveError(t *testing.T) {
	saver := &recordingSaver{err: errors.New("boom")}
	s := New(models.State{}, WithSaver(saver))

	err := s.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestClose_NoSaver(t *testing.T) {
	s := New(models.State{})
	assert.NoError(t, s.Close(context.Background()))
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := New(models.State{})
	folderID := s.CreateFolder("Work")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				id := s.CreateNote(folderID)
				s.UpdateNote(id, NoteUpdate{Content: ptr("x")})
				_ = s.Visible()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, s.State().Notes, 200)
}
