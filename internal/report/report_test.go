package report

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/state"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local)

// daysAgo returns a timestamp n days before testNow.
func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestCompletedTaskCount(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Text: "a", Done: true},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c", Done: true},
	}
	if got := CompletedTaskCount(tasks); got != 2 {
		t.Fatalf("CompletedTaskCount = %d, want 2", got)
	}
	if got := CompletedTaskCount(nil); got != 0 {
		t.Fatalf("CompletedTaskCount(nil) = %d, want 0", got)
	}
}

func TestExpenseTotals(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Description: "Coffee", Amount: 4.50, Category: models.CategoryFood, CreatedAt: testNow},
		{ID: 2, Description: "Bus", Amount: 2.00, Category: models.CategoryTransport, CreatedAt: testNow},
	}

	if got := TotalExpenses(expenses); got != 6.50 {
		t.Fatalf("TotalExpenses = %v, want 6.50", got)
	}

	totals := CategoryTotals(expenses)
	want := []CategoryTotal{
		{Category: models.CategoryFood, Total: 4.50},
		{Category: models.CategoryTransport, Total: 2.00},
	}
	if len(totals) != len(want) {
		t.Fatalf("CategoryTotals returned %d rows, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("CategoryTotals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

func TestCategoryTotalsFirstSeenOrder(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Amount: 1, Category: models.CategoryFun},
		{ID: 2, Amount: 2, Category: models.CategoryFood},
		{ID: 3, Amount: 3, Category: models.CategoryFun},
	}
	totals := CategoryTotals(expenses)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != models.CategoryFun || totals[0].Total != 4 {
		t.Fatalf("first row = %+v, want Fun with total 4", totals[0])
	}
	if totals[1].Category != models.CategoryFood || totals[1].Total != 2 {
		t.Fatalf("second row = %+v, want Food with total 2", totals[1])
	}
}

func TestTotalExpensesPropagatesNaN(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Amount: 5},
		{ID: 2, Amount: math.NaN()},
	}
	if got := TotalExpenses(expenses); !math.IsNaN(got) {
		t.Fatalf("expected NaN total, got %v", got)
	}
}

func TestLoanTotals(t *testing.T) {
	loans := []models.Loan{
		{ID: 1, Person: "Sam", Amount: 100},
		{ID: 2, Person: "Alex", Amount: 40, Returned: true},
		{ID: 3, Person: "Kim", Amount: 25},
	}

	if got := TotalLent(loans); got != 165 {
		t.Fatalf("TotalLent = %v, want 165", got)
	}
	if got := TotalReturned(loans); got != 40 {
		t.Fatalf("TotalReturned = %v, want 40", got)
	}
	if got := PendingLoanTotal(loans); got != 125 {
		t.Fatalf("PendingLoanTotal = %v, want 125", got)
	}
	if TotalLent(loans)-TotalReturned(loans) != PendingLoanTotal(loans) {
		t.Fatalf("pending must equal lent minus returned")
	}
}

func TestTodaySleepTotal(t *testing.T) {
	sessions := []models.SleepSession{
		{ID: 1, Hours: 7.5, CreatedAt: testNow},
		{ID: 2, Hours: 1.0, Afternoon: true, CreatedAt: testNow},
		{ID: 3, Hours: 8.0, CreatedAt: daysAgo(1)},
	}
	if got := TodaySleepTotal(sessions, testNow); got != 8.5 {
		t.Fatalf("TodaySleepTotal = %v, want 8.5", got)
	}
}

func TestLast7Days(t *testing.T) {
	habits := []models.Habit{
		{ID: 1, Name: "read", Dates: []string{state.Day(daysAgo(2)), state.Day(daysAgo(6))}},
		{ID: 2, Name: "run", Dates: []string{state.Day(daysAgo(2))}},
	}
	tasks := []models.Task{
		{ID: 3, Text: "done in window", Done: true, CreatedAt: daysAgo(2)},
		{ID: 4, Text: "not done", CreatedAt: daysAgo(2)},
		// Completed, but created before the window opens: creation
		// date drives the bucket, so it never shows.
		{ID: 5, Text: "old but done", Done: true, CreatedAt: daysAgo(10)},
	}
	expenses := []models.Expense{
		{ID: 6, Amount: 3.25, CreatedAt: daysAgo(2)},
		{ID: 7, Amount: 1.75, CreatedAt: daysAgo(2)},
		{ID: 8, Amount: 99, CreatedAt: daysAgo(8)},
	}
	sessions := []models.SleepSession{
		{ID: 9, Hours: 6, CreatedAt: daysAgo(2)},
	}

	stats := Last7Days(habits, tasks, expenses, sessions, testNow)
	if len(stats) != 7 {
		t.Fatalf("expected 7 days, got %d", len(stats))
	}
	if stats[0].Day != state.Day(daysAgo(6)) || stats[6].Day != state.Day(testNow) {
		t.Fatalf("window must run oldest to today, got %s .. %s", stats[0].Day, stats[6].Day)
	}
	if stats[0].Habits != 1 {
		t.Errorf("oldest day habits = %d, want 1", stats[0].Habits)
	}

	d2 := stats[4] // two days ago
	if d2.Habits != 2 {
		t.Errorf("day-2 habits = %d, want 2", d2.Habits)
	}
	if d2.Tasks != 1 {
		t.Errorf("day-2 tasks = %d, want 1", d2.Tasks)
	}
	if d2.Expenses != 5.00 {
		t.Errorf("day-2 expenses = %v, want 5.00", d2.Expenses)
	}
	if d2.SleepHours != 6 {
		t.Errorf("day-2 sleep = %v, want 6", d2.SleepHours)
	}

	for _, s := range stats {
		if s.Day == state.Day(daysAgo(2)) {
			continue
		}
		if s.Day == state.Day(daysAgo(6)) {
			continue
		}
		if s.Tasks != 0 || s.Expenses != 0 || s.SleepHours != 0 {
			t.Errorf("day %s should be empty, got %+v", s.Day, s)
		}
	}
}

func TestSleepSeries(t *testing.T) {
	day1 := time.Date(2025, 3, 8, 23, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 9, 14, 0, 0, 0, time.Local)
	sessions := []models.SleepSession{
		{ID: 1, Hours: 7, CreatedAt: day1},
		{ID: 2, Hours: 1.5, Afternoon: true, CreatedAt: day1},
		{ID: 3, Hours: 2, Afternoon: true, CreatedAt: day2},
	}

	days := SleepSeries(sessions)
	if len(days) != 2 {
		t.Fatalf("expected 2 sleep days, got %d", len(days))
	}
	if days[0].Label != "Mar 8" || days[0].Night != 7 || days[0].Afternoon != 1.5 {
		t.Fatalf("first day = %+v, want Mar 8 night=7 afternoon=1.5", days[0])
	}
	if days[1].Label != "Mar 9" || days[1].Night != 0 || days[1].Afternoon != 2 {
		t.Fatalf("second day = %+v, want Mar 9 afternoon=2", days[1])
	}
}

func TestSleepSeriesKeepsYearsApart(t *testing.T) {
	// Same month/day in different years are distinct calendar days
	// and must not merge into one row, even though they share a label.
	sessions := []models.SleepSession{
		{ID: 1, Hours: 7, CreatedAt: time.Date(2024, 3, 8, 23, 0, 0, 0, time.Local)},
		{ID: 2, Hours: 8, CreatedAt: time.Date(2025, 3, 8, 23, 0, 0, 0, time.Local)},
	}

	days := SleepSeries(sessions)
	if len(days) != 2 {
		t.Fatalf("expected 2 rows for 2 calendar days, got %d: %+v", len(days), days)
	}
	for _, d := range days {
		if d.Label != "Mar 8" {
			t.Errorf("row label = %q, want Mar 8", d.Label)
		}
	}
	if days[0].Night != 7 || days[1].Night != 8 {
		t.Fatalf("rows = %+v, want separate night totals 7 and 8", days)
	}
}

func TestSleepSeriesSortsByLabelNotYear(t *testing.T) {
	// Labels carry no year, so a December session from the previous
	// year sorts after a January one from this year.
	sessions := []models.SleepSession{
		{ID: 1, Hours: 8, CreatedAt: time.Date(2024, 12, 30, 23, 0, 0, 0, time.Local)},
		{ID: 2, Hours: 7, CreatedAt: time.Date(2025, 1, 2, 23, 0, 0, 0, time.Local)},
	}

	days := SleepSeries(sessions)
	if len(days) != 2 {
		t.Fatalf("expected 2 sleep days, got %d", len(days))
	}
	if days[0].Label != "Jan 2" || days[1].Label != "Dec 30" {
		t.Fatalf("expected month/day ordering [Jan 2, Dec 30], got [%s, %s]", days[0].Label, days[1].Label)
	}
}

func TestRecentActivity(t *testing.T) {
	today := state.Day(testNow)
	habits := []models.Habit{
		{ID: 1, Name: "h1", Dates: []string{today}},
		{ID: 2, Name: "h2"},
		{ID: 3, Name: "h3", Dates: []string{today}},
		{ID: 4, Name: "h4", Dates: []string{today}},
		{ID: 5, Name: "h5", Dates: []string{today}},
	}
	tasks := []models.Task{
		{ID: 6, Text: "t1", Done: true},
		{ID: 7, Text: "t2", Done: true},
		{ID: 8, Text: "t3"},
		{ID: 9, Text: "t4", Done: true},
		{ID: 10, Text: "t5", Done: true},
	}

	feed := RecentActivity(habits, tasks, testNow)
	want := []Activity{
		{Kind: "habit", Text: "h1"},
		{Kind: "habit", Text: "h3"},
		{Kind: "habit", Text: "h4"},
		{Kind: "task", Text: "t2"},
		{Kind: "task", Text: "t4"},
		{Kind: "task", Text: "t5"},
	}
	if len(feed) != len(want) {
		t.Fatalf("feed has %d entries, want %d", len(feed), len(want))
	}
	for i := range want {
		if feed[i] != want[i] {
			t.Errorf("feed[%d] = %+v, want %+v", i, feed[i], want[i])
		}
	}
}

func TestRecentActivityEmpty(t *testing.T) {
	if feed := RecentActivity(nil, nil, testNow); len(feed) != 0 {
		t.Fatalf("expected empty feed, got %v", feed)
	}
}
