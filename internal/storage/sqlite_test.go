package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skewcube/internal/solver"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func solve(t *testing.T) *solver.Result {
	t.Helper()
	res, err := solver.New(nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return res
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	res := solve(t)

	id, err := store.SaveRun(res)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() returned empty ID")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Pieces != solver.Pieces || run.Occupied != 20 {
		t.Errorf("run = %+v, expected %d pieces and 20 occupied", run, solver.Pieces)
	}

	placements, err := store.Placements(id)
	if err != nil {
		t.Fatalf("Placements() failed: %v", err)
	}
	if len(placements) != len(res.Steps) {
		t.Fatalf("Expected %d placements, got %d", len(res.Steps), len(placements))
	}
	for i, p := range placements {
		step := res.Steps[i]
		if p.Step != step.Index || p.Label != step.Label || p.Piece() != step.Piece {
			t.Errorf("placement %d = %+v, expected %v %v", i, p, step.Label, step.Piece)
		}
	}
}

func TestStoreReplayStoredRun(t *testing.T) {
	store := openTestStore(t)
	res := solve(t)

	id, err := store.SaveRun(res)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	pieces, err := store.Pieces(id)
	if err != nil {
		t.Fatalf("Pieces() failed: %v", err)
	}
	replayed, err := solver.New(nil).Replay(pieces)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Final() != res.Final() {
		t.Error("stored run does not replay to the same grids")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	res := solve(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := store.SaveRun(res)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].ID != ids[4] || runs[2].ID != ids[2] {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	latest, err := store.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun() failed: %v", err)
	}
	if latest.ID != ids[4] {
		t.Errorf("LatestRun() = %s, expected %s", latest.ID, ids[4])
	}
}

func TestStoreNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() expected ErrRunNotFound, got %v", err)
	}
	if _, err := store.LatestRun(); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LatestRun() expected ErrRunNotFound, got %v", err)
	}
	if err := store.DeleteRun("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("DeleteRun() expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)
	res := solve(t)

	keep, _ := store.SaveRun(res)
	drop, _ := store.SaveRun(res)

	if err := store.DeleteRun(drop); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}

	if _, err := store.RunByID(drop); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("deleted run still present: %v", err)
	}
	placements, _ := store.Placements(drop)
	if len(placements) != 0 {
		t.Errorf("Expected 0 placements after delete, got %d", len(placements))
	}

	// Other runs should not be affected
	placements, _ = store.Placements(keep)
	if len(placements) != solver.Pieces {
		t.Errorf("Expected %d placements for kept run, got %d", solver.Pieces, len(placements))
	}
}
