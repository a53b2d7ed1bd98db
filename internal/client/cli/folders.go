package cli

import (
	"context"
	"fmt"
	"strings"
)

// Folders prints every folder with its note count; the filtered one is
// marked.
func (a *App) Folders(ctx context.Context) error {
	st := a.store.State()
	if len(st.Folders) == 0 {
		fmt.Fprintln(a.out, "No folders.")
		return nil
	}
	for _, f := range st.Folders {
		marker := " "
		if f.ID == st.ActiveFolderID() {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-8s  %s (%d)\n", marker, shortID(f.ID), f.Name, len(st.NotesInFolder(f.ID)))
	}
	return nil
}

func (a *App) MakeFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return a.fail(ctx, "mkfolder", ErrEmptyName)
	}
	id := a.store.CreateFolder(name)
	fmt.Fprintf(a.out, "Created folder %s\n", shortID(id))
	return nil
}

func (a *App) RenameFolder(ctx context.Context, id, name string) error {
	folderID, err := resolveFolder(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "rnfolder", err)
	}
	a.store.UpdateFolder(folderID, name)
	return nil
}

// DeleteFolder removes a folder together with its notes.
func (a *App) DeleteFolder(ctx context.Context, id string) error {
	st := a.store.State()
	folderID, err := resolveFolder(st, id)
	if err != nil {
		return a.fail(ctx, "rmfolder", err)
	}
	count := len(st.NotesInFolder(folderID))
	if count > 0 {
		answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete folder with %d note(s)? [y/N]", count), a.out)
		if err != nil {
			return a.fail(ctx, "rmfolder", err)
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}
	a.store.DeleteFolder(folderID)
	fmt.Fprintf(a.out, "Deleted folder %s and %d note(s)\n", shortID(folderID), count)
	return nil
}

// FilterFolder shows only the notes of one folder; "" shows all notes.
func (a *App) FilterFolder(ctx context.Context, id string) error {
	if id == "" {
		a.store.SetActiveFolderID("")
		return a.List(ctx)
	}
	folderID, err := resolveFolder(a.store.State(), id)
	if err != nil {
		return a.fail(ctx, "folder", err)
	}
	a.store.SetActiveFolderID(folderID)
	return a.List(ctx)
}
