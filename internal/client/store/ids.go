package store

import (
	"fmt"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/google/uuid"
)

// IDGenerator proposes entity ids. Proposals need not be unique: the store
// rejects any id already in use and asks again.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator proposes random (version 4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

const maxIDAttempts = 8

// allocID returns an id unused by any note, folder or tag in st. If the
// generator keeps colliding, a numeric suffix makes the last proposal unique.
func (s *Store) allocID(st models.State) string {
	var candidate string
	for i := 0; i < maxIDAttempts; i++ {
		candidate = s.ids.NewID()
		if candidate != "" && !st.HasID(candidate) {
			return candidate
		}
	}

	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", candidate, n)
		if !st.HasID(id) {
			return id
		}
	}
}
