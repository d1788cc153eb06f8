package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifelog/internal/state"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	h := trk.AddHabit(c.Name)
	fmt.Printf("Added habit: %s (ID: %d)\n", h.Name, h.ID)
	return nil
}

type HabitToggleCmd struct {
	ID int64 `arg:"" help:"Habit ID."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.ToggleHabit(c.ID)

	today := state.Day(time.Now())
	for _, h := range trk.Store().Habits() {
		if h.ID == c.ID {
			if h.CompletedOn(today) {
				fmt.Printf("✓ %s completed today (+rewards: %d total)\n", h.Name, trk.Store().Rewards())
			} else {
				fmt.Printf("○ %s unmarked for today\n", h.Name)
			}
			return nil
		}
	}
	fmt.Printf("No habit with ID %d\n", c.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habits := trk.Store().Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := state.Day(time.Now())
	fmt.Println("Habits:")
	for _, h := range habits {
		mark := "○"
		if h.CompletedOn(today) {
			mark = "✓"
		}
		fmt.Printf("  %s %s (ID: %d, %d days completed)\n", mark, h.Name, h.ID, len(h.Dates))
	}
	return nil
}

type HabitRmCmd struct {
	ID int64 `arg:"" help:"Habit ID."`
}

func (c *HabitRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveHabit(c.ID)
	fmt.Printf("Removed habit %d\n", c.ID)
	return nil
}
