package game

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const createScoresTableSQL = `
CREATE TABLE IF NOT EXISTS Scores (
    Key TEXT PRIMARY KEY,
    Value INTEGER
);
`

// ScoreStore is a tiny sqlite-backed key/value store holding the best
// score. Every method tolerates a nil receiver, so a failed open
// degrades to a session-only best score instead of an error path.
type ScoreStore struct {
	db *sql.DB
}

// OpenScoreStore opens (creating if needed) the score database at path.
func OpenScoreStore(path string) (*ScoreStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createScoresTableSQL); err != nil {
		db.Close()
		return nil, err
	}
	return &ScoreStore{db: db}, nil
}

// DefaultStorePath places the database under the user config dir.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gridsnake", "scores.db")
}

// Get returns the stored value for key, or 0 when the key is missing,
// malformed, or the store is unavailable.
func (s *ScoreStore) Get(key string) int {
	if s == nil || s.db == nil {
		return 0
	}
	var v int
	err := s.db.QueryRow("SELECT Value FROM Scores WHERE Key = ?", key).Scan(&v)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Set writes the value for key, best-effort. Failures are silently
// dropped: gameplay never depends on the write landing.
func (s *ScoreStore) Set(key string, v int) {
	if s == nil || s.db == nil {
		return
	}
	s.db.Exec("INSERT OR REPLACE INTO Scores (Key, Value) VALUES (?, ?)", key, v)
}

func (s *ScoreStore) Close() {
	if s == nil || s.db == nil {
		return
	}
	s.db.Close()
}
