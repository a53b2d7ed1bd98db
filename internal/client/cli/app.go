package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/client"
	"github.com/dmitrijs2005/notemark/internal/client/config"
	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/client/snapshot"
	"github.com/dmitrijs2005/notemark/internal/client/store"
	"github.com/dmitrijs2005/notemark/internal/cryptox"
	"github.com/dmitrijs2005/notemark/internal/logging"
)

type App struct {
	store       *store.Store
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	db          *sql.DB
	unsubscribe func()
}

func newApp(s *store.Store, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	a := &App{store: s, log: log, reader: reader, out: out}
	a.unsubscribe = s.Subscribe(func(st models.State) {
		a.log.Debug(context.Background(), "state changed",
			"notes", len(st.Notes), "folders", len(st.Folders), "tags", len(st.Tags), "filter", st.Filter.String())
	})
	return a
}

// NewApp opens the database named in c, loads the snapshot and builds the
// store. A locked or malformed snapshot is an error: the app refuses to
// start rather than overwrite data it cannot read.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	p, err := openPersister(ctx, db, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	st, err := p.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if at, ok, err := p.SavedAt(ctx); err == nil && ok {
		log.Info(ctx, "snapshot loaded", "notes", len(st.Notes), "saved_at", at, "encrypted", p.Encrypted())
	}

	s := store.New(st,
		store.WithSaver(p),
		store.WithLogger(log.With("component", "store")),
		store.WithSaveTimeout(c.SaveTimeout),
	)

	a := newApp(s, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func openPersister(ctx context.Context, db *sql.DB, c *config.Config) (*snapshot.Persister, error) {
	if !c.Encrypt {
		p, err := snapshot.Open(ctx, db)
		if errors.Is(err, snapshot.ErrLocked) {
			return nil, fmt.Errorf("%w (start with -e or set %s=true)", err, config.EnvEncrypt)
		}
		return p, err
	}

	passphrase := []byte(c.Passphrase)
	if len(passphrase) == 0 {
		var err error
		if passphrase, err = GetPassword(os.Stderr); err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
	}
	defer cryptox.WipeBytes(passphrase)

	return snapshot.Open(ctx, db, snapshot.WithPassphrase(passphrase))
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to NoteMark (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close writes the final snapshot and releases the database.
func (a *App) Close(ctx context.Context) error {
	a.unsubscribe()
	err := a.store.Close(ctx)
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

// status describes the active filter and search query for the prompt.
func (a *App) status() string {
	st := a.store.State()

	var parts []string
	switch st.Filter.Kind() {
	case models.FilterFolder:
		if f, ok := st.Folder(st.ActiveFolderID()); ok {
			parts = append(parts, "folder:"+f.Name)
		}
	case models.FilterTag:
		if t, ok := st.Tag(st.ActiveTagID()); ok {
			parts = append(parts, "tag:"+t.Name)
		}
	}
	if st.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search:%q", st.SearchQuery))
	}

	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, " ") + ")"
}

// fail logs a failed command and tells the user.
func (a *App) fail(ctx context.Context, cmd string, err error) error {
	a.log.Error(ctx, "command failed", "cmd", cmd, "error", err)
	fmt.Fprintf(a.out, "error: %v\n", err)
	return err
}
