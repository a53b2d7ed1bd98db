// Package snapshot persists the whole store state as one keyed document in
// the local database, optionally sealed with a passphrase-derived key.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/client/repositories/kv"
	"github.com/dmitrijs2005/notemark/internal/cryptox"
	"github.com/dmitrijs2005/notemark/internal/dbx"
)

// Storage keys.
const (
	Key        = "notes-storage"
	SavedAtKey = Key + ".saved_at"
	SaltKey    = Key + ".salt"
)

var (
	ErrLocked    = errors.New("snapshot is encrypted: passphrase required")
	ErrMalformed = errors.New("malformed snapshot")
)

// DB is what the persister needs from the database; *sql.DB satisfies it.
type DB interface {
	dbx.DBTX
	dbx.Beginner
}

// Persister loads and saves the snapshot. It implements store.Saver.
type Persister struct {
	db      DB
	newRepo func(dbx.DBTX) kv.Repository
	now     func() time.Time

	passphrase []byte

	mu sync.Mutex
	// key is nil for plaintext storage.
	key []byte
	// salt is written together with the first sealed document.
	salt       []byte
	saltStored bool
}

type Option func(*Persister)

// WithPassphrase turns on encryption at rest. The passphrase is only read
// during Open; the caller may wipe it afterwards.
func WithPassphrase(passphrase []byte) Option {
	return func(p *Persister) { p.passphrase = passphrase }
}

// WithClock sets the time source for the saved-at marker.
func WithClock(now func() time.Time) Option {
	return func(p *Persister) { p.now = now }
}

// Open prepares a persister over db. An encrypted snapshot opened without a
// passphrase fails with ErrLocked.
func Open(ctx context.Context, db DB, opts ...Option) (*Persister, error) {
	p := &Persister{
		db:      db,
		newRepo: func(tx dbx.DBTX) kv.Repository { return kv.NewSQLiteRepository(tx) },
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	salt, err := p.newRepo(db).Get(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	switch {
	case len(p.passphrase) == 0 && salt != nil:
		return nil, ErrLocked
	case len(p.passphrase) == 0:
		return p, nil
	case salt == nil:
		if salt, err = cryptox.RandomBytes(cryptox.SaltSize); err != nil {
			return nil, err
		}
	default:
		p.saltStored = true
	}

	p.salt = salt
	p.key = cryptox.DeriveKey(p.passphrase, salt)
	p.passphrase = nil
	return p, nil
}

// Encrypted reports whether saves are sealed.
func (p *Persister) Encrypted() bool {
	return p.key != nil
}

// Load returns the stored state, or an empty state when nothing was saved
// yet or the stored document is empty. A document that cannot be decoded yields an error wrapping
// ErrMalformed; a wrong passphrase yields cryptox.ErrDecrypt.
func (p *Persister) Load(ctx context.Context) (models.State, error) {
	raw, err := p.newRepo(p.db).Get(ctx, Key)
	if err != nil {
		return models.State{}, fmt.Errorf("read snapshot: %w", err)
	}
	if len(raw) == 0 {
		return models.State{}, nil
	}

	p.mu.Lock()
	sealed := p.saltStored
	p.mu.Unlock()

	if sealed {
		if raw, err = cryptox.Open(raw, p.key); err != nil {
			return models.State{}, fmt.Errorf("unseal snapshot: %w", err)
		}
	}
	return Decode(raw)
}

// Save writes st and the saved-at marker in one transaction.
func (p *Persister) Save(ctx context.Context, st models.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		sealed, err := cryptox.Seal(data, p.key)
		cryptox.WipeBytes(data)
		if err != nil {
			return fmt.Errorf("seal snapshot: %w", err)
		}
		data = sealed
	}

	err = dbx.WithTx(ctx, p.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.newRepo(tx)
		if p.key != nil && !p.saltStored {
			if err := repo.Set(ctx, SaltKey, p.salt); err != nil {
				return err
			}
		}
		if err := repo.Set(ctx, Key, data); err != nil {
			return err
		}
		return repo.Set(ctx, SavedAtKey, []byte(strconv.FormatInt(p.now().UnixMilli(), 10)))
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if p.key != nil {
		p.saltStored = true
	}
	return nil
}

// SavedAt returns when the snapshot was last written; ok is false if never.
func (p *Persister) SavedAt(ctx context.Context) (t time.Time, ok bool, err error) {
	raw, err := p.newRepo(p.db).Get(ctx, SavedAtKey)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read saved-at: %w", err)
	}
	if raw == nil {
		return time.Time{}, false, nil
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: saved-at %q", ErrMalformed, raw)
	}
	return fromMillis(ms), true, nil
}
