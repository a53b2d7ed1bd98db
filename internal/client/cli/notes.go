package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/client/store"
	"github.com/dmitrijs2005/notemark/internal/markdown"
)

// List prints the visible notes, newest first.
func (a *App) List(ctx context.Context) error {
	st := a.store.State()
	notes := store.VisibleNotes(st)
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes.")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintln(a.out, noteLine(st, n))
	}
	return nil
}

// NewNote creates a note in the active folder and opens it.
func (a *App) NewNote(ctx context.Context, title string) error {
	id := a.store.QuickCreateNote()
	if title = strings.TrimSpace(title); title != "" {
		a.store.UpdateNote(id, store.NoteUpdate{Title: &title})
	}
	fmt.Fprintf(a.out, "Created note %s\n", shortID(id))
	return nil
}

func (a *App) OpenNote(ctx context.Context, id string) error {
	noteID, err := resolveNote(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "open", err)
	}
	a.store.SetActiveNoteID(noteID)
	return a.ShowNote(ctx, noteID)
}

// ShowNote prints a note in full; an empty id shows the active note.
func (a *App) ShowNote(ctx context.Context, id string) error {
	st := a.store.State()
	noteID, err := resolveNoteOrActive(st, id)
	if err != nil {
		return a.fail(ctx, "show", err)
	}
	n, _ := st.Note(noteID)
	fmt.Fprint(a.out, noteDetails(st, n))
	return nil
}

func (a *App) SetTitle(ctx context.Context, id, title string) error {
	noteID, err := resolveNote(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "title", err)
	}
	a.store.UpdateNote(noteID, store.NoteUpdate{Title: &title})
	return nil
}

// EditNote replaces the content of a note with lines read until an empty
// line. A note still carrying the default title takes its title from the
// first heading.
func (a *App) EditNote(ctx context.Context, id string) error {
	noteID, err := resolveNote(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}

	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}

	u := store.NoteUpdate{Content: &content}
	if n, ok := a.store.State().Note(noteID); ok && n.Title == models.DefaultNoteTitle && content != "" {
		title := markdown.ExtractTitle(content)
		u.Title = &title
	}
	a.store.UpdateNote(noteID, u)
	a.store.SetActiveNoteID(noteID)
	fmt.Fprintf(a.out, "Saved note %s\n", shortID(noteID))
	return nil
}

func (a *App) MoveNote(ctx context.Context, id, folder string) error {
	st := a.store.State()
	noteID, err := resolveNote(st, id)
	if err != nil {
		return a.fail(ctx, "mv", err)
	}
	folderID, err := resolveFolder(st, folder)
	if err != nil {
		return a.fail(ctx, "mv", err)
	}
	a.store.UpdateNote(noteID, store.NoteUpdate{FolderID: &folderID})
	return nil
}

func (a *App) DeleteNote(ctx context.Context, id string) error {
	noteID, err := resolveNote(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "rm", err)
	}
	a.store.DeleteNote(noteID)
	fmt.Fprintf(a.out, "Deleted note %s\n", shortID(noteID))
	return nil
}
