package client

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/notemark/internal/client/migrations"
	"github.com/dmitrijs2005/notemark/internal/logging"

	_ "modernc.org/sqlite"
)

// gooseLogger routes goose progress output into a logging.Logger.
type gooseLogger struct {
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}

// RunMigrations applies every pending embedded migration. It is safe to run
// on an up-to-date database.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// migrates it.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
