// Package save persists game states across restarts. Saves live in named
// slots; a slot holds exactly one snapshot and is overwritten on save.
package save

import (
	"errors"
	"time"

	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

// ErrNotFound is returned when a slot does not exist.
var ErrNotFound = errors.New("save slot not found")

// Snapshot is one stored game state plus its bookkeeping.
type Snapshot struct {
	ID      string        `json:"id"`
	Slot    string        `json:"slot"`
	SavedAt time.Time     `json:"saved_at"`
	State   sim.GameState `json:"state"`
}

// SlotInfo summarizes a slot without loading the full state.
type SlotInfo struct {
	Slot    string    `json:"slot"`
	SavedAt time.Time `json:"saved_at"`
	Day     int       `json:"day"`
	Cash    int       `json:"cash"`
}

// Store is the persistence boundary for saves.
type Store interface {
	Save(slot string, state sim.GameState) (Snapshot, error)
	Load(slot string) (Snapshot, error)
	List() ([]SlotInfo, error)
	Delete(slot string) error
}
