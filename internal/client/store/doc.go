// Package store is the single source of truth for notes, folders and tags.
//
// # Overview
//
// A Store owns one immutable models.State at a time. Every mutation goes
// through a Store method, which builds the next State (copy-on-write, so
// values handed out earlier never change), writes it through the configured
// Saver, and then calls every subscribed listener with it, all before the
// method returns. Methods that find nothing to change (unknown ids, values
// already set) commit nothing and notify nobody.
//
// # Invariants
//
//   - every note's FolderID resolves to a folder; deleting a folder deletes
//     its notes
//   - every note's TagIDs is a duplicate-free subset of existing tag ids;
//     deleting a tag strips it from every note
//   - UpdatedAt >= CreatedAt on every note
//   - ActiveNoteID is "" or resolves to a note
//   - folder and tag filters are exclusive (see models.Filter)
//
// # Errors
//
// Store operations never fail. Invalid references degrade to silent no-ops
// and a failed snapshot write is logged, not returned.
//
// # Concurrency
//
// Operations are serialized: each one, including its snapshot write and
// listener calls, completes before the next starts. Listeners may call
// State and the read helpers but must not call mutating methods.
//
// Typical usage
//
//	s := store.New(initial, store.WithSaver(persister), store.WithLogger(log))
//	defer s.Close(ctx)
//	unsubscribe := s.Subscribe(func(st models.State) { render(store.VisibleNotes(st)) })
//	folderID := s.CreateFolder("Work")
//	noteID := s.CreateNote(folderID)
//	s.UpdateNote(noteID, store.NoteUpdate{Content: ptr("# Hello")})
package store
