package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog/internal/tracker"
	"github.com/julianstephens/lifelog/internal/tui/components/habitlist"
	"github.com/julianstephens/lifelog/internal/tui/components/tasklist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateTasks
	StateAddHabit
	StateAddTask
	StateConfirmDelete
)

// tabCount is the number of cycleable tabs; the remaining states are
// modal and entered explicitly.
const tabCount = 3

type HabitFormModel struct {
	Name string
}

type TaskFormModel struct {
	Text string
}

type Model struct {
	trk           *tracker.Tracker
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	taskList      tasklist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	taskForm      *TaskFormModel
	deleteKind    string // "habit" or "task"
	deleteID      int64
	quitting      bool
	width         int
	height        int
}

func NewModel(trk *tracker.Tracker) Model {
	store := trk.Store()
	return Model{
		trk:       trk,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(store.Habits(), 0, 0),
		taskList:  tasklist.New(store.Tasks(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits, StateTasks:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits, StateTasks:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads both lists from the store after a mutation.
func (m *Model) refresh() {
	m.habitList.SetHabits(m.trk.Store().Habits())
	m.taskList.SetTasks(m.trk.Store().Tasks())
}
