package save

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

// SQLiteStore keeps saves in a single-file database. One row per slot; saving
// upserts.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

const saveSchema = `CREATE TABLE IF NOT EXISTS saves (
	slot     TEXT PRIMARY KEY,
	id       TEXT NOT NULL,
	saved_at TEXT NOT NULL,
	state    TEXT NOT NULL
)`

// OpenSQLiteStore opens (or creates) the database at path and applies the
// schema.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(saveSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Save(slot string, state sim.GameState) (Snapshot, error) {
	snap := Snapshot{
		ID:      uuid.NewString(),
		Slot:    slot,
		SavedAt: s.now().UTC(),
		State:   state.Clone(),
	}
	blob, err := json.Marshal(snap.State)
	if err != nil {
		return Snapshot{}, err
	}
	_, err = s.db.Exec(
		`INSERT INTO saves (slot, id, saved_at, state) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET id=excluded.id, saved_at=excluded.saved_at, state=excluded.state`,
		slot, snap.ID, snap.SavedAt.Format(time.RFC3339Nano), string(blob),
	)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLiteStore) Load(slot string) (Snapshot, error) {
	var (
		snap    Snapshot
		savedAt string
		blob    string
	)
	row := s.db.QueryRow(`SELECT id, saved_at, state FROM saves WHERE slot = ?`, slot)
	if err := row.Scan(&snap.ID, &savedAt, &blob); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	snap.Slot = slot
	t, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return Snapshot{}, err
	}
	snap.SavedAt = t
	if err := json.Unmarshal([]byte(blob), &snap.State); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLiteStore) List() ([]SlotInfo, error) {
	rows, err := s.db.Query(`SELECT slot, saved_at, state FROM saves ORDER BY slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := make([]SlotInfo, 0)
	for rows.Next() {
		var (
			info    SlotInfo
			savedAt string
			blob    string
		)
		if err := rows.Scan(&info.Slot, &savedAt, &blob); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, err
		}
		info.SavedAt = t
		var state sim.GameState
		if err := json.Unmarshal([]byte(blob), &state); err != nil {
			return nil, err
		}
		info.Day = state.Day
		info.Cash = state.Cash
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *SQLiteStore) Delete(slot string) error {
	res, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
