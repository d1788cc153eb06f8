// Package report computes derived views over the current collections.
// Everything here is pure: values in, values out, no store access and
// no side effects. Views are recomputed on demand, never cached.
package report

import (
	"sort"
	"time"

	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

// DayStat is one day of the activity chart window.
type DayStat struct {
	Day        string  // YYYY-MM-DD
	Label      string  // short month/day, e.g. "Jan 2"
	Habits     int     // habits whose completion set contains this day
	Tasks      int     // tasks created this day and currently completed
	Expenses   float64 // sum of expense amounts dated this day
	SleepHours float64 // sum of sleep durations dated this day
}

// CategoryTotal is one expense category's sum, in first-seen order.
type CategoryTotal struct {
	Category models.Category
	Total    float64
}

// SleepDay is one calendar day's sleep split into night sleep and
// afternoon naps.
type SleepDay struct {
	Label     string // short month/day display label
	Night     float64
	Afternoon float64
}

// Activity is one line of the recent-activity feed.
type Activity struct {
	Kind string // "habit" or "task"
	Text string
}

// CompletedTaskCount counts tasks with Done set.
func CompletedTaskCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// TotalLent sums all loan amounts regardless of state.
func TotalLent(loans []models.Loan) float64 {
	var sum float64
	for _, l := range loans {
		sum += l.Amount
	}
	return sum
}

// TotalReturned sums amounts of loans already paid back.
func TotalReturned(loans []models.Loan) float64 {
	var sum float64
	for _, l := range loans {
		if l.Returned {
			sum += l.Amount
		}
	}
	return sum
}

// PendingLoanTotal sums amounts still out. Equals TotalLent minus
// TotalReturned for any loan history.
func PendingLoanTotal(loans []models.Loan) float64 {
	var sum float64
	for _, l := range loans {
		if !l.Returned {
			sum += l.Amount
		}
	}
	return sum
}

// TotalExpenses sums all expense amounts. A NaN amount (unparseable
// input stored verbatim) propagates into the sum.
func TotalExpenses(expenses []models.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// TodaySleepTotal sums durations of sessions recorded today.
func TodaySleepTotal(sessions []models.SleepSession, now time.Time) float64 {
	today := state.Day(now)
	var sum float64
	for _, s := range sessions {
		if state.Day(s.CreatedAt) == today {
			sum += s.Hours
		}
	}
	return sum
}

// Last7Days builds the activity chart series: one record per calendar
// day for the window ending today, oldest first.
//
// The task count intentionally filters on creation date, not the day
// the task was completed; a task finished later still shows under the
// day it was created.
func Last7Days(habits []models.Habit, tasks []models.Task, expenses []models.Expense, sessions []models.SleepSession, now time.Time) []DayStat {
	stats := make([]DayStat, 0, constants.ChartDays)

	for i := constants.ChartDays - 1; i >= 0; i-- {
		dayTime := now.AddDate(0, 0, -i)
		day := state.Day(dayTime)

		stat := DayStat{
			Day:   day,
			Label: dayTime.Format(constants.DayLabelFormat),
		}

		for _, h := range habits {
			if h.CompletedOn(day) {
				stat.Habits++
			}
		}
		for _, t := range tasks {
			if t.Done && state.Day(t.CreatedAt) == day {
				stat.Tasks++
			}
		}
		for _, e := range expenses {
			if state.Day(e.CreatedAt) == day {
				stat.Expenses += e.Amount
			}
		}
		for _, s := range sessions {
			if state.Day(s.CreatedAt) == day {
				stat.SleepHours += s.Hours
			}
		}

		stats = append(stats, stat)
	}

	return stats
}

// CategoryTotals sums expenses per category. Categories appear in the
// order they are first seen in the collection.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[models.Category]int)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Total += e.Amount
	}

	return totals
}

// SleepSeries groups all sessions by calendar day and splits each
// day's total into night sleep and afternoon naps.
//
// Rows are ordered by re-parsing the formatted display label, which
// carries no year; days from different years interleave by month/day.
// Kept as-is to match the established chart output.
func SleepSeries(sessions []models.SleepSession) []SleepDay {
	var days []SleepDay
	index := make(map[string]int)

	for _, s := range sessions {
		day := state.Day(s.CreatedAt)
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, SleepDay{Label: s.CreatedAt.Format(constants.DayLabelFormat)})
		}
		if s.Afternoon {
			days[i].Afternoon += s.Hours
		} else {
			days[i].Night += s.Hours
		}
	}

	sortByLabel(days)
	return days
}

func sortByLabel(days []SleepDay) {
	parse := func(label string) time.Time {
		t, err := time.Parse(constants.DayLabelFormat, label)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	sort.SliceStable(days, func(i, j int) bool {
		return parse(days[i].Label).Before(parse(days[j].Label))
	})
}

// RecentActivity lists up to 3 habits completed today, in collection
// order, followed by the last 3 completed tasks in collection order,
// capped at 6 lines total.
func RecentActivity(habits []models.Habit, tasks []models.Task, now time.Time) []Activity {
	today := state.Day(now)
	var feed []Activity

	count := 0
	for _, h := range habits {
		if count == 3 {
			break
		}
		if h.CompletedOn(today) {
			feed = append(feed, Activity{Kind: "habit", Text: h.Name})
			count++
		}
	}

	var done []models.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		}
	}
	start := len(done) - 3
	if start < 0 {
		start = 0
	}
	for _, t := range done[start:] {
		feed = append(feed, Activity{Kind: "task", Text: t.Text})
	}

	if len(feed) > constants.RecentActivityLimit {
		feed = feed[:constants.RecentActivityLimit]
	}
	return feed
}
