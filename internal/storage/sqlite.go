// Package storage provides SQLite-based persistence for solver runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/skewcube/internal/lattice"
	"github.com/vovakirdan/skewcube/internal/solver"
)

// ErrRunNotFound is returned when no run matches the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a stored run.
type RunEntry struct {
	ID        string
	Pieces    int
	Occupied  int
	CreatedAt time.Time
}

// PlacementEntry represents one stored placement of a run.
type PlacementEntry struct {
	Step      int
	Label     lattice.Label
	Root      lattice.Node
	Direction lattice.Direction
}

// Piece rebuilds the placed piece.
func (p PlacementEntry) Piece() lattice.Piece {
	return lattice.NewPiece(p.Root, p.Direction)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			pieces INTEGER NOT NULL,
			occupied INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS placements (
			run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			label TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			direction TEXT NOT NULL,
			PRIMARY KEY (run_id, step)
		);
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

// SaveRun records a run and its placements in one transaction.
// Returns the generated run ID.
func (s *Store) SaveRun(res *solver.Result) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, pieces, occupied) VALUES (?, ?, ?)",
		id, len(res.Steps), res.Occupied,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, step := range res.Steps {
		root := step.Piece.Root()
		if _, err := tx.Exec(
			`INSERT INTO placements (run_id, step, label, x, y, z, direction)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, step.Index, step.Label.String(), root.X, root.Y, root.Z, step.Piece.Direction().String(),
		); err != nil {
			return "", fmt.Errorf("storage: cannot save placement %d: %w", step.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT run_id, pieces, occupied, created_at
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pieces, &e.Occupied, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunByID retrieves a run by its ID.
func (s *Store) RunByID(id string) (*RunEntry, error) {
	var e RunEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT run_id, pieces, occupied, created_at FROM runs WHERE run_id = ?`,
		id,
	).Scan(&e.ID, &e.Pieces, &e.Occupied, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// LatestRun retrieves the most recently saved run.
func (s *Store) LatestRun() (*RunEntry, error) {
	runs, err := s.RecentRuns(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: no runs recorded", ErrRunNotFound)
	}
	return &runs[0], nil
}

// Placements retrieves the placements of a run in step order.
func (s *Store) Placements(id string) ([]PlacementEntry, error) {
	rows, err := s.db.Query(
		`SELECT step, label, x, y, z, direction
		 FROM placements
		 WHERE run_id = ?
		 ORDER BY step`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query placements: %w", err)
	}
	defer rows.Close()

	var entries []PlacementEntry
	for rows.Next() {
		var e PlacementEntry
		var label, direction string
		if err := rows.Scan(&e.Step, &label, &e.Root.X, &e.Root.Y, &e.Root.Z, &direction); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		l, ok := lattice.ParseLabel(label)
		if !ok {
			return nil, fmt.Errorf("storage: step %d: bad label %q", e.Step, label)
		}
		e.Label = l

		d, err := lattice.ParseDirection(direction)
		if err != nil {
			return nil, fmt.Errorf("storage: step %d: %w", e.Step, err)
		}
		e.Direction = d

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Pieces retrieves the placed pieces of a run in step order.
func (s *Store) Pieces(id string) ([]lattice.Piece, error) {
	entries, err := s.Placements(id)
	if err != nil {
		return nil, err
	}
	pieces := make([]lattice.Piece, len(entries))
	for i, e := range entries {
		pieces[i] = e.Piece()
	}
	return pieces, nil
}

// DeleteRun removes a run and its placements.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM placements WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete placements: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE run_id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
