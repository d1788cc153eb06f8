package tracker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
	"github.com/julianstephens/lifelog/internal/storage"
)

// Tracker applies mutations to the state store and persists after
// every change. Persistence is fire-and-forget: a failed save is
// logged and the in-memory state stays canonical.
type Tracker struct {
	store   *state.Store
	persist storage.Provider
	now     func() time.Time
	lastID  int64
}

func New(store *state.Store, persist storage.Provider) *Tracker {
	return &Tracker{
		store:   store,
		persist: persist,
		now:     time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *Tracker) Store() *state.Store {
	return t.store
}

// nextID assigns creation IDs from the millisecond clock, bumped past
// the previous ID when two creations land in the same millisecond so
// creation order stays recoverable from ID order.
func (t *Tracker) nextID() int64 {
	id := t.now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// TrackLastID records an already-assigned ID so later creations never
// collide with data loaded from storage or an import.
func (t *Tracker) TrackLastID(id int64) {
	if id > t.lastID {
		t.lastID = id
	}
}

func (t *Tracker) save() {
	if t.persist == nil {
		return
	}
	if err := t.persist.Save(t.store.Snapshot()); err != nil {
		logger.Error("failed to persist state", "path", t.persist.Path(), "error", err)
	}
}

func (t *Tracker) today() string {
	return state.Day(t.now())
}

// parseAmount parses external (possibly string) numeric input. Invalid
// input yields NaN, stored verbatim; mutators stay total functions.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// --- Habits ---

func (t *Tracker) AddHabit(name string) models.Habit {
	h := models.Habit{
		ID:        t.nextID(),
		Name:      name,
		Dates:     []string{},
		CreatedAt: t.now(),
	}
	t.store.SetHabits(append(t.store.Habits(), h))
	t.save()
	return h
}

// ToggleHabit flips today's membership in the habit's completion set.
// Marking a day grants reward points; unmarking does not take them back.
func (t *Tracker) ToggleHabit(id int64) {
	today := t.today()
	habits := t.store.Habits()
	for i, h := range habits {
		if h.ID != id {
			continue
		}
		if h.CompletedOn(today) {
			dates := make([]string, 0, len(h.Dates))
			for _, d := range h.Dates {
				if d != today {
					dates = append(dates, d)
				}
			}
			habits[i].Dates = dates
		} else {
			habits[i].Dates = append(h.Dates, today)
			t.store.AddRewards(constants.RewardHabitCompletion)
		}
		break
	}
	t.store.SetHabits(habits)
	t.save()
}

func (t *Tracker) RemoveHabit(id int64) {
	habits := t.store.Habits()
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	t.store.SetHabits(out)
	t.save()
}

// --- Tasks ---

func (t *Tracker) AddTask(text string) models.Task {
	task := models.Task{
		ID:        t.nextID(),
		Text:      text,
		CreatedAt: t.now(),
	}
	t.store.SetTasks(append(t.store.Tasks(), task))
	t.save()
	return task
}

// ToggleTask flips completion. The previous value is read once and the
// flip computed from that single read, so a toggle can never double
// apply. Completing grants reward points; un-completing does not.
func (t *Tracker) ToggleTask(id int64) {
	tasks := t.store.Tasks()
	for i, task := range tasks {
		if task.ID != id {
			continue
		}
		wasDone := task.Done
		tasks[i].Done = !wasDone
		if !wasDone {
			t.store.AddRewards(constants.RewardTaskCompletion)
		}
		break
	}
	t.store.SetTasks(tasks)
	t.save()
}

// AttachTaskPhoto encodes raw image bytes into an embeddable data URI
// and stores it against the matching task only. The decode that is
// asynchronous in an event-loop host collapses here to one blocking call.
func (t *Tracker) AttachTaskPhoto(id int64, raw []byte) {
	encoded := EncodePhoto(raw)
	tasks := t.store.Tasks()
	for i, task := range tasks {
		if task.ID == id {
			tasks[i].Photo = encoded
			break
		}
	}
	t.store.SetTasks(tasks)
	t.save()
}

func (t *Tracker) RemoveTask(id int64) {
	tasks := t.store.Tasks()
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			out = append(out, task)
		}
	}
	t.store.SetTasks(out)
	t.save()
}

// --- Expenses ---

func (t *Tracker) AddExpense(description, amount string, category models.Category) models.Expense {
	e := models.Expense{
		ID:          t.nextID(),
		Description: description,
		Amount:      parseAmount(amount),
		Category:    category,
		CreatedAt:   t.now(),
	}
	t.store.SetExpenses(append(t.store.Expenses(), e))
	t.save()
	return e
}

func (t *Tracker) RemoveExpense(id int64) {
	expenses := t.store.Expenses()
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	t.store.SetExpenses(out)
	t.save()
}

// --- Notes ---

func (t *Tracker) AddNote(title, content string) models.Note {
	n := models.Note{
		ID:        t.nextID(),
		Title:     title,
		Content:   content,
		CreatedAt: t.now(),
	}
	t.store.SetNotes(append(t.store.Notes(), n))
	t.save()
	return n
}

func (t *Tracker) RemoveNote(id int64) {
	notes := t.store.Notes()
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	t.store.SetNotes(out)
	t.save()
}

// --- Memories ---

// AddMemory requires both a title and photo bytes.
func (t *Tracker) AddMemory(title string, raw []byte) (models.Memory, error) {
	if strings.TrimSpace(title) == "" {
		return models.Memory{}, fmt.Errorf("memory title is required")
	}
	if len(raw) == 0 {
		return models.Memory{}, fmt.Errorf("memory photo is required")
	}

	m := models.Memory{
		ID:        t.nextID(),
		Title:     title,
		Photo:     EncodePhoto(raw),
		CreatedAt: t.now(),
	}
	t.store.SetMemories(append(t.store.Memories(), m))
	t.save()
	return m, nil
}

func (t *Tracker) RemoveMemory(id int64) {
	memories := t.store.Memories()
	out := make([]models.Memory, 0, len(memories))
	for _, m := range memories {
		if m.ID != id {
			out = append(out, m)
		}
	}
	t.store.SetMemories(out)
	t.save()
}

// --- Loans ---

func (t *Tracker) AddLoan(person, amount, note string) models.Loan {
	l := models.Loan{
		ID:        t.nextID(),
		Person:    person,
		Amount:    parseAmount(amount),
		Note:      note,
		DateGiven: t.now(),
	}
	t.store.SetLoans(append(t.store.Loans(), l))
	t.save()
	return l
}

// ToggleLoanReturned flips the returned flag. DateReturned is set on
// the false→true transition and cleared on true→false, preserving the
// returned ⇔ dateReturned invariant.
func (t *Tracker) ToggleLoanReturned(id int64) {
	loans := t.store.Loans()
	for i, l := range loans {
		if l.ID != id {
			continue
		}
		if l.Returned {
			loans[i].Returned = false
			loans[i].DateReturned = nil
		} else {
			now := t.now()
			loans[i].Returned = true
			loans[i].DateReturned = &now
		}
		break
	}
	t.store.SetLoans(loans)
	t.save()
}

func (t *Tracker) RemoveLoan(id int64) {
	loans := t.store.Loans()
	out := make([]models.Loan, 0, len(loans))
	for _, l := range loans {
		if l.ID != id {
			out = append(out, l)
		}
	}
	t.store.SetLoans(out)
	t.save()
}

// --- Sleep ---

func (t *Tracker) AddSleep(hours string, afternoon bool) models.SleepSession {
	s := models.SleepSession{
		ID:        t.nextID(),
		Hours:     parseAmount(hours),
		Afternoon: afternoon,
		CreatedAt: t.now(),
	}
	t.store.SetSleepSessions(append(t.store.SleepSessions(), s))
	t.save()
	return s
}

func (t *Tracker) RemoveSleep(id int64) {
	sessions := t.store.SleepSessions()
	out := make([]models.SleepSession, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	t.store.SetSleepSessions(out)
	t.save()
}
