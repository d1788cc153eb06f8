package tracker

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

func newTestTracker(t *testing.T) (*Tracker, *time.Time) {
	t.Helper()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	trk := New(state.New(), nil)
	trk.SetClock(func() time.Time { return now })
	return trk, &now
}

func TestToggleHabitParityAndRewards(t *testing.T) {
	trk, _ := newTestTracker(t)
	h := trk.AddHabit("Drink water")

	// Odd number of toggles = set, even = unset; rewards only accrue
	// on the toggles that set membership.
	for i := 1; i <= 5; i++ {
		trk.ToggleHabit(h.ID)

		habit := trk.Store().Habits()[0]
		wantSet := i%2 == 1
		if got := habit.CompletedOn("2025-03-10"); got != wantSet {
			t.Fatalf("after %d toggles, completed=%v, want %v", i, got, wantSet)
		}

		wantRewards := ((i + 1) / 2) * 10
		if got := trk.Store().Rewards(); got != wantRewards {
			t.Fatalf("after %d toggles, rewards=%d, want %d", i, got, wantRewards)
		}
	}
}

func TestToggleHabitScenario(t *testing.T) {
	trk, _ := newTestTracker(t)
	h := trk.AddHabit("Drink water")

	trk.ToggleHabit(h.ID)
	habit := trk.Store().Habits()[0]
	if len(habit.Dates) != 1 || habit.Dates[0] != "2025-03-10" {
		t.Fatalf("expected completion set {2025-03-10}, got %v", habit.Dates)
	}
	if trk.Store().Rewards() != 10 {
		t.Fatalf("expected 10 rewards, got %d", trk.Store().Rewards())
	}

	trk.ToggleHabit(h.ID)
	habit = trk.Store().Habits()[0]
	if len(habit.Dates) != 0 {
		t.Fatalf("expected empty completion set, got %v", habit.Dates)
	}
	if trk.Store().Rewards() != 10 {
		t.Fatalf("rewards should stay at 10, got %d", trk.Store().Rewards())
	}
}

func TestToggleTaskSingleFlip(t *testing.T) {
	trk, _ := newTestTracker(t)
	task := trk.AddTask("write tests")

	trk.ToggleTask(task.ID)
	if got := trk.Store().Tasks()[0]; !got.Done {
		t.Fatalf("expected task done after first toggle")
	}
	if trk.Store().Rewards() != 5 {
		t.Fatalf("expected 5 rewards after completing, got %d", trk.Store().Rewards())
	}

	// Reopening grants nothing and must not double apply.
	trk.ToggleTask(task.ID)
	if got := trk.Store().Tasks()[0]; got.Done {
		t.Fatalf("expected task reopened after second toggle")
	}
	if trk.Store().Rewards() != 5 {
		t.Fatalf("rewards should stay at 5, got %d", trk.Store().Rewards())
	}

	trk.ToggleTask(task.ID)
	if trk.Store().Rewards() != 10 {
		t.Fatalf("expected 10 rewards after completing again, got %d", trk.Store().Rewards())
	}
}

func TestLoanReturnedInvariant(t *testing.T) {
	trk, now := newTestTracker(t)
	l := trk.AddLoan("Sam", "100", "lunch")

	loan := trk.Store().Loans()[0]
	if loan.Returned || loan.DateReturned != nil {
		t.Fatalf("new loan should be outstanding with nil DateReturned")
	}

	trk.ToggleLoanReturned(l.ID)
	loan = trk.Store().Loans()[0]
	if !loan.Returned {
		t.Fatalf("expected loan returned after toggle")
	}
	if loan.DateReturned == nil || !loan.DateReturned.Equal(*now) {
		t.Fatalf("expected DateReturned=%v, got %v", now, loan.DateReturned)
	}

	trk.ToggleLoanReturned(l.ID)
	loan = trk.Store().Loans()[0]
	if loan.Returned || loan.DateReturned != nil {
		t.Fatalf("expected loan outstanding again with nil DateReturned, got %+v", loan)
	}
}

func TestRemoveAbsentIDIsNoop(t *testing.T) {
	trk, _ := newTestTracker(t)
	trk.AddHabit("read")
	trk.AddTask("tidy")
	trk.AddNote("a", "b")

	trk.RemoveHabit(999)
	trk.RemoveTask(999)
	trk.RemoveNote(999)
	trk.RemoveExpense(999)
	trk.RemoveLoan(999)
	trk.RemoveSleep(999)
	trk.RemoveMemory(999)

	s := trk.Store()
	if len(s.Habits()) != 1 || len(s.Tasks()) != 1 || len(s.Notes()) != 1 {
		t.Fatalf("removing absent IDs must not touch existing entities")
	}
}

func TestAddExpenseInvalidAmountStoresNaN(t *testing.T) {
	trk, _ := newTestTracker(t)
	e := trk.AddExpense("mystery", "not-a-number", models.CategoryOther)

	if !math.IsNaN(e.Amount) {
		t.Fatalf("expected NaN amount, got %v", e.Amount)
	}
	if !math.IsNaN(trk.Store().Expenses()[0].Amount) {
		t.Fatalf("NaN should be stored verbatim")
	}
}

func TestAttachTaskPhoto(t *testing.T) {
	trk, _ := newTestTracker(t)
	task := trk.AddTask("photograph")
	other := trk.AddTask("untouched")

	raw := []byte("\x89PNG\r\n\x1a\nfakeimagedata")
	trk.AttachTaskPhoto(task.ID, raw)

	tasks := trk.Store().Tasks()
	if !strings.HasPrefix(tasks[0].Photo, "data:image/png;base64,") {
		t.Fatalf("expected png data URI, got %q", tasks[0].Photo[:min(len(tasks[0].Photo), 40)])
	}
	if tasks[1].Photo != "" {
		t.Fatalf("photo must attach to the matching task only, task %d got one", other.ID)
	}
}

func TestAddMemoryRequiresTitleAndPhoto(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.AddMemory("", []byte("img")); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if _, err := trk.AddMemory("beach", nil); err == nil {
		t.Fatalf("expected error for missing photo")
	}
	if len(trk.Store().Memories()) != 0 {
		t.Fatalf("failed adds must not create memories")
	}

	m, err := trk.AddMemory("beach", []byte("img"))
	if err != nil {
		t.Fatalf("AddMemory failed: %v", err)
	}
	if !strings.HasPrefix(m.Photo, "data:") {
		t.Fatalf("expected encoded photo, got %q", m.Photo)
	}
}

func TestIDsMonotonicWithinSameMillisecond(t *testing.T) {
	trk, _ := newTestTracker(t)

	// The frozen clock makes every creation land in the same
	// millisecond; IDs must still strictly increase.
	a := trk.AddHabit("one")
	b := trk.AddTask("two")
	c := trk.AddNote("three", "")

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Fatalf("expected strictly increasing IDs, got %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestTrackLastIDGuardsImportedIDs(t *testing.T) {
	trk, now := newTestTracker(t)
	future := now.UnixMilli() + 1000000
	trk.TrackLastID(future)

	h := trk.AddHabit("after import")
	if h.ID <= future {
		t.Fatalf("expected ID after tracked %d, got %d", future, h.ID)
	}
}
