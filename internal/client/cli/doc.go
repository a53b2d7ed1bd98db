// Package cli provides the interactive NoteMark command-line client.
//
// NewApp opens the local database, unlocks and loads the snapshot, and
// builds the note store with the snapshot persister as its saver. Run starts
// the REPL, which blocks until the user exits; Close writes the final
// snapshot and closes the database.
//
// Commands accept ids by unique prefix; folders and tags can also be named.
// See runREPL for the command list.
package cli
