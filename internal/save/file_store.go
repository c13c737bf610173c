package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

// FileStore persists one JSON file per slot under a data directory.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
	now     func() time.Time
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir, now: time.Now}, nil
}

func (s *FileStore) filePath(slot string) string {
	return filepath.Join(s.dataDir, slot+".json")
}

func (s *FileStore) Save(slot string, state sim.GameState) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:      uuid.NewString(),
		Slot:    slot,
		SavedAt: s.now().UTC(),
		State:   state.Clone(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return Snapshot{}, err
	}

	// Write-then-rename keeps a crash from truncating the previous save.
	tmp := s.filePath(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return Snapshot{}, err
	}
	if err := os.Rename(tmp, s.filePath(slot)); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *FileStore) Load(slot string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *FileStore) List() ([]SlotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, err
	}
	infos := make([]SlotInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dataDir, e.Name()))
		if err != nil {
			return nil, err
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		infos = append(infos, SlotInfo{
			Slot:    strings.TrimSuffix(e.Name(), ".json"),
			SavedAt: snap.SavedAt,
			Day:     snap.State.Day,
			Cash:    snap.State.Cash,
		})
	}
	return infos, nil
}

func (s *FileStore) Delete(slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath(slot))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
