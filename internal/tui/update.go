package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog/internal/tui/components/habitlist"
	"github.com/julianstephens/lifelog/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.taskList.SetSize(msg.Width-4, msg.Height-6)

	case habitlist.AddHabitMsg:
		return m.openHabitForm()
	case habitlist.ToggleHabitMsg:
		m.trk.ToggleHabit(msg.ID)
		m.refresh()
		return m, nil
	case habitlist.DeleteHabitMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.deleteKind = "habit"
		m.deleteID = msg.ID
		return m, nil

	case tasklist.AddTaskMsg:
		return m.openTaskForm()
	case tasklist.ToggleTaskMsg:
		m.trk.ToggleTask(msg.ID)
		m.refresh()
		return m, nil
	case tasklist.DeleteTaskMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.deleteKind = "task"
		m.deleteID = msg.ID
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateAddTask:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}

func (m Model) openHabitForm() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateAddHabit
	m.habitForm = &HabitFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Habit name").
			Value(&m.habitForm.Name),
	))
	return m, m.form.Init()
}

func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = StateAddTask
	m.taskForm = &TaskFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Task description").
			Value(&m.taskForm.Text),
	))
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case StateAddHabit:
			if m.habitForm.Name != "" {
				m.trk.AddHabit(m.habitForm.Name)
			}
		case StateAddTask:
			if m.taskForm.Text != "" {
				m.trk.AddTask(m.taskForm.Text)
			}
		}
		m.refresh()
		m.state = m.previousState
		m.form = nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		switch m.deleteKind {
		case "habit":
			m.trk.RemoveHabit(m.deleteID)
		case "task":
			m.trk.RemoveTask(m.deleteID)
		}
		m.refresh()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}
