package state

import (
	"time"

	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/models"
)

// Snapshot is the complete set of collection values plus the reward
// counter at one instant. It is the unit of persistence and of
// export/import.
type Snapshot struct {
	Habits        []models.Habit        `json:"habits"`
	Tasks         []models.Task         `json:"todos"`
	Expenses      []models.Expense      `json:"expenses"`
	Notes         []models.Note         `json:"notes"`
	Memories      []models.Memory       `json:"memories"`
	Loans         []models.Loan         `json:"loans"`
	Rewards       int                   `json:"rewards"`
	SleepSessions []models.SleepSession `json:"sleepSessions"`
}

// Store is the application-state container: eight named collections
// plus the reward counter. Mutation is whole-collection replacement; a
// caller reads the current value, computes a new one, and installs it.
//
// Concurrency note:
//   - Store is not safe for concurrent use by multiple goroutines without
//     external synchronization. All mutation is expected to happen on a
//     single logical thread of control (one user action at a time).
type Store struct {
	habits        []models.Habit
	tasks         []models.Task
	expenses      []models.Expense
	notes         []models.Note
	memories      []models.Memory
	loans         []models.Loan
	sleepSessions []models.SleepSession
	rewards       int
}

func New() *Store {
	return &Store{}
}

func (s *Store) Habits() []models.Habit             { return s.habits }
func (s *Store) SetHabits(v []models.Habit)         { s.habits = v }
func (s *Store) Tasks() []models.Task               { return s.tasks }
func (s *Store) SetTasks(v []models.Task)           { s.tasks = v }
func (s *Store) Expenses() []models.Expense         { return s.expenses }
func (s *Store) SetExpenses(v []models.Expense)     { s.expenses = v }
func (s *Store) Notes() []models.Note               { return s.notes }
func (s *Store) SetNotes(v []models.Note)           { s.notes = v }
func (s *Store) Memories() []models.Memory          { return s.memories }
func (s *Store) SetMemories(v []models.Memory)      { s.memories = v }
func (s *Store) Loans() []models.Loan               { return s.loans }
func (s *Store) SetLoans(v []models.Loan)           { s.loans = v }
func (s *Store) SleepSessions() []models.SleepSession {
	return s.sleepSessions
}
func (s *Store) SetSleepSessions(v []models.SleepSession) { s.sleepSessions = v }

func (s *Store) Rewards() int          { return s.rewards }
func (s *Store) SetRewards(n int)      { s.rewards = n }
func (s *Store) AddRewards(points int) { s.rewards += points }

// Snapshot returns a copy of the current state. Collection slices are
// copied so later mutations do not alias into the snapshot.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Habits:        copySlice(s.habits),
		Tasks:         copySlice(s.tasks),
		Expenses:      copySlice(s.expenses),
		Notes:         copySlice(s.notes),
		Memories:      copySlice(s.memories),
		Loans:         copySlice(s.loans),
		Rewards:       s.rewards,
		SleepSessions: copySlice(s.sleepSessions),
	}
}

// Restore replaces the entire state with the given snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.habits = copySlice(snap.Habits)
	s.tasks = copySlice(snap.Tasks)
	s.expenses = copySlice(snap.Expenses)
	s.notes = copySlice(snap.Notes)
	s.memories = copySlice(snap.Memories)
	s.loans = copySlice(snap.Loans)
	s.rewards = snap.Rewards
	s.sleepSessions = copySlice(snap.SleepSessions)
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Day formats a time as the calendar-day key used throughout the
// aggregation layer. Comparison is by local calendar-date string
// equality, not by numeric day boundaries in a fixed timezone.
func Day(t time.Time) string {
	return t.Format(constants.DayFormat)
}
