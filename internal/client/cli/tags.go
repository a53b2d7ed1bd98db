package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/store"
)

func (a *App) Tags(ctx context.Context) error {
	st := a.store.State()
	if len(st.Tags) == 0 {
		fmt.Fprintln(a.out, "No tags.")
		return nil
	}
	for _, t := range st.Tags {
		marker := " "
		if t.ID == st.ActiveTagID() {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-8s  %s [%s]\n", marker, shortID(t.ID), t.Name, t.Color)
	}
	return nil
}

func (a *App) MakeTag(ctx context.Context, color, name string) error {
	c, err := parseColor(color)
	if err != nil {
		return a.fail(ctx, "mktag", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return a.fail(ctx, "mktag", ErrEmptyName)
	}
	id := a.store.CreateTag(name, c)
	fmt.Fprintf(a.out, "Created tag %s\n", shortID(id))
	return nil
}

func (a *App) RenameTag(ctx context.Context, id, name string) error {
	tagID, err := resolveTag(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "rntag", err)
	}
	a.store.UpdateTag(tagID, store.TagUpdate{Name: &name})
	return nil
}

func (a *App) RecolorTag(ctx context.Context, id, color string) error {
	tagID, err := resolveTag(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "color", err)
	}
	c, err := parseColor(color)
	if err != nil {
		return a.fail(ctx, "color", err)
	}
	a.store.UpdateTag(tagID, store.TagUpdate{Color: &c})
	return nil
}

// DeleteTag removes a tag and strips it from every note.
func (a *App) DeleteTag(ctx context.Context, id string) error {
	tagID, err := resolveTag(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "rmtag", err)
	}
	a.store.DeleteTag(tagID)
	fmt.Fprintf(a.out, "Deleted tag %s\n", shortID(tagID))
	return nil
}

func (a *App) TagNote(ctx context.Context, noteRef, tagRef string) error {
	noteID, tagID, err := a.noteAndTag(noteRef, tagRef)
	if err != nil {
		return a.fail(ctx, "tag", err)
	}
	a.store.AddTagToNote(noteID, tagID)
	return nil
}

func (a *App) UntagNote(ctx context.Context, noteRef, tagRef string) error {
	noteID, tagID, err := a.noteAndTag(noteRef, tagRef)
	if err != nil {
		return a.fail(ctx, "untag", err)
	}
	a.store.RemoveTagFromNote(noteID, tagID)
	return nil
}

func (a *App) noteAndTag(noteRef, tagRef string) (noteID, tagID string, err error) {
	st := a.store.State()
	if noteID, err = resolveNote(st, noteRef); err != nil {
		return "", "", err
	}
	if tagID, err = resolveTag(st, tagRef); err != nil {
		return "", "", err
	}
	return noteID, tagID, nil
}

// FilterTag shows only notes carrying one tag; "" shows all notes.
func (a *App) FilterTag(ctx context.Context, id string) error {
	if id == "" {
		a.store.SetActiveTagID("")
		return a.List(ctx)
	}
	tagID, err := resolveTag(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "filter", err)
	}
	a.store.SetActiveTagID(tagID)
	return a.List(ctx)
}

// SuggestTags lists tags the note does not carry yet whose names contain
// query.
func (a *App) SuggestTags(ctx context.Context, noteRef, query string) error {
	st := a.store.State()
	noteID, err := resolveNote(st, noteRef)
	if err != nil {
		return a.fail(ctx, "suggest", err)
	}
	tags := store.AvailableTags(st, noteID, query)
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags to add.")
		return nil
	}
	for _, t := range tags {
		fmt.Fprintf(a.out, "  %-8s  %s [%s]\n", shortID(t.ID), t.Name, t.Color)
	}
	return nil
}
