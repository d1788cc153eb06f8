package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

// Amount and hours columns are TEXT so that NaN (from unparseable user
// input, stored verbatim) survives a round trip; SQLite REAL has no NaN.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	dates TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY,
	text TEXT NOT NULL,
	done INTEGER NOT NULL,
	photo TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	amount TEXT NOT NULL,
	category TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS memories (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	photo TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS loans (
	id INTEGER PRIMARY KEY,
	person TEXT NOT NULL,
	amount TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	returned INTEGER NOT NULL,
	date_given TEXT NOT NULL,
	date_returned TEXT
);
CREATE TABLE IF NOT EXISTS sleep_sessions (
	id INTEGER PRIMARY KEY,
	hours TEXT NOT NULL,
	afternoon INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(
		`INSERT OR IGNORE INTO meta (key, value) VALUES ('version', '1'), ('rewards', '0')`,
	); err != nil {
		return fmt.Errorf("failed to initialize metadata: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (state.Snapshot, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return state.Snapshot{}, fmt.Errorf("storage not initialized, run 'lifelog init' first")
	}
	if err := s.open(); err != nil {
		return state.Snapshot{}, err
	}

	var snap state.Snapshot
	var err error

	if snap.Habits, err = s.loadHabits(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.Tasks, err = s.loadTasks(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.Expenses, err = s.loadExpenses(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.Notes, err = s.loadNotes(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.Memories, err = s.loadMemories(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.Loans, err = s.loadLoans(); err != nil {
		return state.Snapshot{}, err
	}
	if snap.SleepSessions, err = s.loadSleepSessions(); err != nil {
		return state.Snapshot{}, err
	}

	var rewards string
	err = s.db.QueryRow(`SELECT value FROM meta WHERE key = 'rewards'`).Scan(&rewards)
	if err != nil && err != sql.ErrNoRows {
		return state.Snapshot{}, fmt.Errorf("failed to load rewards: %w", err)
	}
	if rewards != "" {
		if snap.Rewards, err = strconv.Atoi(rewards); err != nil {
			return state.Snapshot{}, fmt.Errorf("invalid rewards value %q: %w", rewards, err)
		}
	}

	return snap, nil
}

// Save replaces every table's rows inside one transaction. The
// in-memory collections are canonical; the database is a mirror.
func (s *SQLiteStore) Save(snap state.Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tables := []string{"habits", "todos", "expenses", "notes", "memories", "loans", "sleep_sessions"}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, h := range snap.Habits {
		dates, err := json.Marshal(h.Dates)
		if err != nil {
			return fmt.Errorf("failed to serialize habit dates: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO habits (id, name, dates, created_at) VALUES (?, ?, ?, ?)`,
			h.ID, h.Name, string(dates), encodeTime(h.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
	}

	for _, t := range snap.Tasks {
		if _, err := tx.Exec(
			`INSERT INTO todos (id, text, done, photo, created_at) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Text, t.Done, t.Photo, encodeTime(t.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
	}

	for _, e := range snap.Expenses {
		if _, err := tx.Exec(
			`INSERT INTO expenses (id, description, amount, category, created_at) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Description, encodeFloat(e.Amount), string(e.Category), encodeTime(e.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
	}

	for _, n := range snap.Notes {
		if _, err := tx.Exec(
			`INSERT INTO notes (id, title, content, created_at) VALUES (?, ?, ?, ?)`,
			n.ID, n.Title, n.Content, encodeTime(n.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
	}

	for _, m := range snap.Memories {
		if _, err := tx.Exec(
			`INSERT INTO memories (id, title, photo, created_at) VALUES (?, ?, ?, ?)`,
			m.ID, m.Title, m.Photo, encodeTime(m.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save memory: %w", err)
		}
	}

	for _, l := range snap.Loans {
		var returned any
		if l.DateReturned != nil {
			returned = encodeTime(*l.DateReturned)
		}
		if _, err := tx.Exec(
			`INSERT INTO loans (id, person, amount, note, returned, date_given, date_returned) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.Person, encodeFloat(l.Amount), l.Note, l.Returned, encodeTime(l.DateGiven), returned,
		); err != nil {
			return fmt.Errorf("failed to save loan: %w", err)
		}
	}

	for _, sl := range snap.SleepSessions {
		if _, err := tx.Exec(
			`INSERT INTO sleep_sessions (id, hours, afternoon, created_at) VALUES (?, ?, ?, ?)`,
			sl.ID, encodeFloat(sl.Hours), sl.Afternoon, encodeTime(sl.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save sleep session: %w", err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO meta (key, value) VALUES ('rewards', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(snap.Rewards),
	); err != nil {
		return fmt.Errorf("failed to save rewards: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT id, name, dates, created_at FROM habits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var dates, created string
		if err := rows.Scan(&h.ID, &h.Name, &dates, &created); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if err := json.Unmarshal([]byte(dates), &h.Dates); err != nil {
			return nil, fmt.Errorf("failed to parse habit dates: %w", err)
		}
		if h.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) loadTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT id, text, done, photo, created_at FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var created string
		if err := rows.Scan(&t.ID, &t.Text, &t.Done, &t.Photo, &created); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if t.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) loadExpenses() ([]models.Expense, error) {
	rows, err := s.db.Query(`SELECT id, description, amount, category, created_at FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var amount, category, created string
		if err := rows.Scan(&e.ID, &e.Description, &amount, &category, &created); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Amount, err = decodeFloat(amount); err != nil {
			return nil, err
		}
		e.Category = models.Category(category)
		if e.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *SQLiteStore) loadNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`SELECT id, title, content, created_at FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var created string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &created); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if n.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) loadMemories() ([]models.Memory, error) {
	rows, err := s.db.Query(`SELECT id, title, photo, created_at FROM memories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	defer rows.Close()

	var memories []models.Memory
	for rows.Next() {
		var m models.Memory
		var created string
		if err := rows.Scan(&m.ID, &m.Title, &m.Photo, &created); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		if m.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

func (s *SQLiteStore) loadLoans() ([]models.Loan, error) {
	rows, err := s.db.Query(`SELECT id, person, amount, note, returned, date_given, date_returned FROM loans ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var l models.Loan
		var amount, given string
		var returned sql.NullString
		if err := rows.Scan(&l.ID, &l.Person, &amount, &l.Note, &l.Returned, &given, &returned); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		if l.Amount, err = decodeFloat(amount); err != nil {
			return nil, err
		}
		if l.DateGiven, err = decodeTime(given); err != nil {
			return nil, err
		}
		if returned.Valid {
			t, err := decodeTime(returned.String)
			if err != nil {
				return nil, err
			}
			l.DateReturned = &t
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (s *SQLiteStore) loadSleepSessions() ([]models.SleepSession, error) {
	rows, err := s.db.Query(`SELECT id, hours, afternoon, created_at FROM sleep_sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.SleepSession
	for rows.Next() {
		var sl models.SleepSession
		var hours, created string
		if err := rows.Scan(&sl.ID, &hours, &sl.Afternoon, &created); err != nil {
			return nil, fmt.Errorf("failed to scan sleep session: %w", err)
		}
		if sl.Hours, err = decodeFloat(hours); err != nil {
			return nil, err
		}
		if sl.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		sessions = append(sessions, sl)
	}
	return sessions, rows.Err()
}

func encodeTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

func encodeFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func decodeFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	return f, nil
}
