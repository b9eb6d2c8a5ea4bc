// Package storage keeps a log of finished snake rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The default DSN is in-memory, so the log lives as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a database that disappears when the store is closed.
const MemoryDSN = ":memory:"

// Store manages the SQLite database connection for the round log.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID        string
	Player    string
	Score     int
	Cause     string
	Ticks     uint64
	Seed      int64
	CreatedAt time.Time
}

// Stats summarises the whole log.
type Stats struct {
	Rounds  int
	Best    int
	Average float64
	Wins    int // rounds that filled the board
}

// Open creates or opens the round log at dsn.
// An empty dsn or ":memory:" opens an in-memory database.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	if dsn != MemoryDSN {
		// Expand ~ to home directory
		if dsn[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}

		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			cause TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC, created_at);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns it with ID and CreatedAt filled in
// when they were left empty.
func (s *Store) SaveRound(r Round) (Round, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Player == "" {
		r.Player = "anonymous"
	}

	_, err := s.db.Exec(
		"INSERT INTO rounds (id, player, score, cause, ticks, seed, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.Player, r.Score, r.Cause, int64(r.Ticks), r.Seed, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Round{}, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r, nil
}

// TopRounds retrieves the best N rounds, highest score first.
// Ties are broken by the earlier round.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, player, score, cause, ticks, seed, created_at
		 FROM rounds
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRounds retrieves every round of one player, highest score first.
func (s *Store) PlayerRounds(player string) ([]Round, error) {
	return s.queryRounds(
		`SELECT id, player, score, cause, ticks, seed, created_at
		 FROM rounds
		 WHERE player = ?
		 ORDER BY score DESC, created_at ASC`,
		player,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var (
			r         Round
			ticks     int64
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Cause, &ticks, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.Unix(0, createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// HighScore returns the best score in the log.
// Returns 0 if no rounds exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns aggregate numbers over every round. winCause is the cause
// string recorded for rounds that ended by filling the board.
func (s *Store) Stats(winCause string) (Stats, error) {
	var (
		st   Stats
		best sql.NullInt64
		avg  sql.NullFloat64
		wins sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), SUM(CASE WHEN cause = ? THEN 1 ELSE 0 END)
		 FROM rounds`,
		winCause,
	).Scan(&st.Rounds, &best, &avg, &wins)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.Wins = int(wins.Int64)
	return st, nil
}
