// Package client bootstraps the local SQLite database the CLI keeps its
// snapshot in: it opens the file with the pure-Go driver and applies the
// embedded goose migrations.
package client
