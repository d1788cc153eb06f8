package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifelog/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateTasks:
		content = docStyle.Render(m.taskList.View())
	case StateAddHabit, StateAddTask:
		return m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Habits", "Tasks"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	s := m.trk.Store()
	now := time.Now()

	var b strings.Builder

	stat := func(label, value string) {
		b.WriteString(statLabelStyle.Render(fmt.Sprintf("%-18s", label)))
		b.WriteString(statValueStyle.Render(value))
		b.WriteString("\n")
	}

	stat("Tasks completed", fmt.Sprintf("%d", report.CompletedTaskCount(s.Tasks())))
	stat("Sleep today", formatHours(report.TodaySleepTotal(s.SleepSessions(), now)))
	stat("Total expenses", formatMoney(report.TotalExpenses(s.Expenses())))
	stat("Loans pending", formatMoney(report.PendingLoanTotal(s.Loans())))
	stat("Reward points", fmt.Sprintf("%d", s.Rewards()))

	b.WriteString("\nLast 7 days\n")
	for _, d := range report.Last7Days(s.Habits(), s.Tasks(), s.Expenses(), s.SleepSessions(), now) {
		n := d.Habits + d.Tasks
		if n > 20 {
			n = 20
		}
		b.WriteString(fmt.Sprintf("%-7s %s %d\n", d.Label, chartBarStyle.Render(strings.Repeat("█", n)), n))
	}

	if feed := report.RecentActivity(s.Habits(), s.Tasks(), now); len(feed) > 0 {
		b.WriteString("\nRecent activity\n")
		for _, a := range feed {
			b.WriteString(fmt.Sprintf("  [%s] %s\n", a.Kind, a.Text))
		}
	}

	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete this %s?", m.deleteKind)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func formatHours(f float64) string {
	if math.IsNaN(f) {
		return "(invalid)"
	}
	return fmt.Sprintf("%.1fh", f)
}

func formatMoney(f float64) string {
	if math.IsNaN(f) {
		return "(invalid)"
	}
	return fmt.Sprintf("%.2f", f)
}
