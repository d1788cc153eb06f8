// Package snapshot serializes the whole store to a single JSON
// document and restores it from one, merging only the keys present in
// the input.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

// FormatError reports an import payload that is not a JSON object.
// Nothing is applied to the store when one is returned.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid import document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid import document: %s", e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Document is the export file shape: the eight collections, the reward
// counter and an export timestamp.
type Document struct {
	Habits        []models.Habit        `json:"habits"`
	Tasks         []models.Task         `json:"todos"`
	Expenses      []models.Expense      `json:"expenses"`
	Notes         []models.Note         `json:"notes"`
	Memories      []models.Memory       `json:"memories"`
	Loans         []models.Loan         `json:"loans"`
	Rewards       int                   `json:"rewards"`
	SleepSessions []models.SleepSession `json:"sleepSessions"`
	ExportDate    time.Time             `json:"exportDate"`
}

// Export serializes the snapshot to a pretty-printed JSON document.
func Export(snap state.Snapshot, now time.Time) ([]byte, error) {
	doc := Document{
		Habits:        snap.Habits,
		Tasks:         snap.Tasks,
		Expenses:      snap.Expenses,
		Notes:         snap.Notes,
		Memories:      snap.Memories,
		Loans:         snap.Loans,
		Rewards:       snap.Rewards,
		SleepSessions: snap.SleepSessions,
		ExportDate:    now,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// Import applies a document to the store. Only the known keys present
// in the document replace the store's corresponding values; absent
// keys are untouched. The whole document is decoded before anything is
// applied, so a malformed payload leaves the store unchanged.
//
// A present rewards value of 0 is skipped, leaving the existing
// counter in place. Long-standing merge quirk; imports that need to
// zero the counter cannot.
func Import(data []byte, store *state.Store) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &FormatError{Reason: "not a JSON object", Err: err}
	}
	if raw == nil {
		return &FormatError{Reason: "document is null"}
	}

	// Stage every present key before touching the store.
	var habits []models.Habit
	var tasks []models.Task
	var expenses []models.Expense
	var notes []models.Note
	var memories []models.Memory
	var loans []models.Loan
	var sessions []models.SleepSession
	var rewards int

	decode := func(key string, v any) (bool, error) {
		msg, ok := raw[key]
		if !ok {
			return false, nil
		}
		if err := json.Unmarshal(msg, v); err != nil {
			return false, &FormatError{Reason: fmt.Sprintf("bad %q value", key), Err: err}
		}
		return true, nil
	}

	hasHabits, err := decode("habits", &habits)
	if err != nil {
		return err
	}
	hasTasks, err := decode("todos", &tasks)
	if err != nil {
		return err
	}
	hasExpenses, err := decode("expenses", &expenses)
	if err != nil {
		return err
	}
	hasNotes, err := decode("notes", &notes)
	if err != nil {
		return err
	}
	hasMemories, err := decode("memories", &memories)
	if err != nil {
		return err
	}
	hasLoans, err := decode("loans", &loans)
	if err != nil {
		return err
	}
	hasSessions, err := decode("sleepSessions", &sessions)
	if err != nil {
		return err
	}
	hasRewards, err := decode("rewards", &rewards)
	if err != nil {
		return err
	}

	if hasHabits {
		store.SetHabits(habits)
	}
	if hasTasks {
		store.SetTasks(tasks)
	}
	if hasExpenses {
		store.SetExpenses(expenses)
	}
	if hasNotes {
		store.SetNotes(notes)
	}
	if hasMemories {
		store.SetMemories(memories)
	}
	if hasLoans {
		store.SetLoans(loans)
	}
	if hasSessions {
		store.SetSleepSessions(sessions)
	}
	if hasRewards && rewards != 0 {
		store.SetRewards(rewards)
	}

	return nil
}
