package storage

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

func testSnapshot() state.Snapshot {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	returned := now.AddDate(0, 0, 2)

	return state.Snapshot{
		Habits:        []models.Habit{{ID: 1, Name: "read", Dates: []string{"2025-03-10"}, CreatedAt: now}},
		Tasks:         []models.Task{{ID: 2, Text: "tidy", Done: true, Photo: "data:image/png;base64,aWs=", CreatedAt: now}},
		Expenses:      []models.Expense{{ID: 3, Description: "Coffee", Amount: 4.5, Category: models.CategoryFood, CreatedAt: now}},
		Notes:         []models.Note{{ID: 4, Title: "idea", Content: "write more", CreatedAt: now}},
		Memories:      []models.Memory{{ID: 5, Title: "beach", Photo: "data:image/jpeg;base64,aWs=", CreatedAt: now}},
		Loans:         []models.Loan{{ID: 6, Person: "Sam", Amount: 100, Note: "lunch", Returned: true, DateGiven: now, DateReturned: &returned}},
		Rewards:       45,
		SleepSessions: []models.SleepSession{{ID: 7, Hours: 7.5, Afternoon: true, CreatedAt: now}},
	}
}

func assertSnapshotsMatch(t *testing.T, got, want state.Snapshot) {
	t.Helper()

	if len(got.Habits) != 1 || got.Habits[0].Name != want.Habits[0].Name ||
		len(got.Habits[0].Dates) != 1 || got.Habits[0].Dates[0] != "2025-03-10" {
		t.Errorf("habits = %+v, want %+v", got.Habits, want.Habits)
	}
	if len(got.Tasks) != 1 || !got.Tasks[0].Done || got.Tasks[0].Photo != want.Tasks[0].Photo {
		t.Errorf("tasks = %+v, want %+v", got.Tasks, want.Tasks)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 4.5 || got.Expenses[0].Category != models.CategoryFood {
		t.Errorf("expenses = %+v, want %+v", got.Expenses, want.Expenses)
	}
	if len(got.Notes) != 1 || got.Notes[0].Content != "write more" {
		t.Errorf("notes = %+v, want %+v", got.Notes, want.Notes)
	}
	if len(got.Memories) != 1 || got.Memories[0].Photo != want.Memories[0].Photo {
		t.Errorf("memories = %+v, want %+v", got.Memories, want.Memories)
	}
	if len(got.Loans) != 1 {
		t.Fatalf("loans = %+v, want 1 loan", got.Loans)
	}
	loan := got.Loans[0]
	if !loan.Returned || loan.DateReturned == nil || !loan.DateReturned.Equal(*want.Loans[0].DateReturned) {
		t.Errorf("loan = %+v, want returned with DateReturned %v", loan, want.Loans[0].DateReturned)
	}
	if !loan.DateGiven.Equal(want.Loans[0].DateGiven) {
		t.Errorf("loan DateGiven = %v, want %v", loan.DateGiven, want.Loans[0].DateGiven)
	}
	if got.Rewards != 45 {
		t.Errorf("rewards = %d, want 45", got.Rewards)
	}
	if len(got.SleepSessions) != 1 || got.SleepSessions[0].Hours != 7.5 || !got.SleepSessions[0].Afternoon {
		t.Errorf("sleep sessions = %+v, want %+v", got.SleepSessions, want.SleepSessions)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := testSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSnapshotsMatch(t, got, want)
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Fatalf("expected error on second Init")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not-initialized error, got %v", err)
	}
}

func TestJSONStoreInitCreatesEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lifelog.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Habits) != 0 || len(snap.Tasks) != 0 || snap.Rewards != 0 {
		t.Fatalf("fresh store should be empty, got %+v", snap)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := testSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSnapshotsMatch(t, got, want)
}

func TestSQLiteStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Save(testSnapshot()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	// A later save with fewer rows must not leave the old rows behind.
	next := state.Snapshot{
		Tasks:   []models.Task{{ID: 9, Text: "only one", CreatedAt: time.Now()}},
		Rewards: 5,
	}
	if err := store.Save(next); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Habits) != 0 || len(got.Loans) != 0 {
		t.Fatalf("old rows survived a replacing save: %+v", got)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Text != "only one" {
		t.Fatalf("tasks = %+v, want the single replacement row", got.Tasks)
	}
	if got.Rewards != 5 {
		t.Fatalf("rewards = %d, want 5", got.Rewards)
	}
}

func TestSQLiteStorePreservesNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelog.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	snap := state.Snapshot{
		Expenses: []models.Expense{{ID: 1, Description: "bad input", Amount: math.NaN(), Category: models.CategoryOther, CreatedAt: time.Now()}},
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Expenses) != 1 || !math.IsNaN(got.Expenses[0].Amount) {
		t.Fatalf("NaN amount did not round-trip: %+v", got.Expenses)
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))

	_, err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not-initialized error, got %v", err)
	}
}
