package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifelog/internal/report"
)

type SleepAddCmd struct {
	Hours     string `arg:"" help:"Hours slept."`
	Afternoon bool   `short:"a" help:"Record as an afternoon nap."`
}

func (c *SleepAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := trk.AddSleep(c.Hours, c.Afternoon)
	kind := "night sleep"
	if s.Afternoon {
		kind = "afternoon nap"
	}
	fmt.Printf("Logged %sh of %s (ID: %d)\n", formatAmount(s.Hours), kind, s.ID)
	return nil
}

type SleepListCmd struct{}

func (c *SleepListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	sessions := trk.Store().SleepSessions()
	if len(sessions) == 0 {
		fmt.Println("No sleep sessions found")
		return nil
	}

	fmt.Println("Sleep sessions:")
	for _, s := range sessions {
		kind := "night"
		if s.Afternoon {
			kind = "nap"
		}
		fmt.Printf("  %s  %5sh  %-5s (ID: %d)\n", formatDay(s.CreatedAt), formatAmount(s.Hours), kind, s.ID)
	}
	fmt.Printf("\nToday: %sh\n", formatAmount(report.TodaySleepTotal(sessions, time.Now())))
	return nil
}

// SleepReportCmd prints per-day totals split into night sleep and naps.
type SleepReportCmd struct{}

func (c *SleepReportCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	days := report.SleepSeries(trk.Store().SleepSessions())
	if len(days) == 0 {
		fmt.Println("No sleep sessions found")
		return nil
	}

	fmt.Println("Sleep by day:")
	for _, d := range days {
		fmt.Printf("  %-6s  night %5sh   naps %5sh\n", d.Label, formatAmount(d.Night), formatAmount(d.Afternoon))
	}
	return nil
}

type SleepRmCmd struct {
	ID int64 `arg:"" help:"Sleep session ID."`
}

func (c *SleepRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveSleep(c.ID)
	fmt.Printf("Removed sleep session %d\n", c.ID)
	return nil
}
