package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/logging"
)

// Saver persists a committed state. Store treats it as best effort.
type Saver interface {
	Save(ctx context.Context, st models.State) error
}

// Listener receives every committed state.
type Listener func(st models.State)

// DefaultSaveTimeout bounds a snapshot write unless WithSaveTimeout says otherwise.
const DefaultSaveTimeout = 3 * time.Second

// Option configures a Store in New.
type Option func(*Store)

// WithSaver persists every committed state through saver.
func WithSaver(saver Saver) Option {
	return func(s *Store) { s.saver = saver }
}

// WithLogger sets where failed saves and commits are logged.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithSaveTimeout bounds each snapshot write.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}
