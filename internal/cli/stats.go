package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifelog/internal/report"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := trk.Store()
	now := time.Now()

	fmt.Println("Today:")
	fmt.Printf("  Tasks completed:   %d\n", report.CompletedTaskCount(s.Tasks()))
	fmt.Printf("  Sleep logged:      %sh\n", formatAmount(report.TodaySleepTotal(s.SleepSessions(), now)))
	fmt.Printf("  Reward points:     %d\n", s.Rewards())

	fmt.Println("\nMoney:")
	fmt.Printf("  Total expenses:    %s\n", formatAmount(report.TotalExpenses(s.Expenses())))
	fmt.Printf("  Loans outstanding: %s\n", formatAmount(report.PendingLoanTotal(s.Loans())))

	if totals := report.CategoryTotals(s.Expenses()); len(totals) > 0 {
		fmt.Println("\nSpending by category:")
		for _, t := range totals {
			fmt.Printf("  %-10s %s\n", t.Category, formatAmount(t.Total))
		}
	}

	if feed := report.RecentActivity(s.Habits(), s.Tasks(), now); len(feed) > 0 {
		fmt.Println("\nRecent activity:")
		for _, a := range feed {
			fmt.Printf("  [%s] %s\n", a.Kind, a.Text)
		}
	}

	return nil
}

// ChartCmd prints the 7-day activity table the dashboard chart is
// built from.
type ChartCmd struct{}

func (c *ChartCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := trk.Store()
	stats := report.Last7Days(s.Habits(), s.Tasks(), s.Expenses(), s.SleepSessions(), time.Now())

	fmt.Printf("%-7s %7s %6s %9s %7s\n", "Day", "Habits", "Tasks", "Expenses", "Sleep")
	for _, d := range stats {
		fmt.Printf("%-7s %7d %6d %9s %6sh  %s\n",
			d.Label, d.Habits, d.Tasks, formatAmount(d.Expenses), formatAmount(d.SleepHours), bar(d.Habits+d.Tasks))
	}
	return nil
}

func bar(n int) string {
	if n > 20 {
		n = 20
	}
	return strings.Repeat("█", n)
}
