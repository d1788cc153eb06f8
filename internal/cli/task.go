package cli

import (
	"fmt"
	"os"
)

type TaskAddCmd struct {
	Text string `arg:"" help:"Task description."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	t := trk.AddTask(c.Text)
	fmt.Printf("Added task: %s (ID: %d)\n", t.Text, t.ID)
	return nil
}

type TaskDoneCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.ToggleTask(c.ID)

	for _, t := range trk.Store().Tasks() {
		if t.ID == c.ID {
			if t.Done {
				fmt.Printf("✓ %s (rewards: %d total)\n", t.Text, trk.Store().Rewards())
			} else {
				fmt.Printf("○ %s reopened\n", t.Text)
			}
			return nil
		}
	}
	fmt.Printf("No task with ID %d\n", c.ID)
	return nil
}

type TaskListCmd struct {
	PendingOnly bool `help:"Show only pending tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	tasks := trk.Store().Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, t := range tasks {
		if c.PendingOnly && t.Done {
			continue
		}

		mark := "○"
		if t.Done {
			mark = "✓"
		}
		photo := ""
		if t.Photo != "" {
			photo = " [photo]"
		}
		fmt.Printf("  %s %s (ID: %d, created %s)%s\n", mark, t.Text, t.ID, formatDay(t.CreatedAt), photo)
	}
	return nil
}

type TaskPhotoCmd struct {
	ID   int64  `arg:"" help:"Task ID."`
	File string `arg:"" type:"existingfile" help:"Image file to attach."`
}

func (c *TaskPhotoCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	trk.AttachTaskPhoto(c.ID, raw)
	fmt.Printf("Attached photo to task %d\n", c.ID)
	return nil
}

type TaskRmCmd struct {
	ID int64 `arg:"" help:"Task ID."`
}

func (c *TaskRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveTask(c.ID)
	fmt.Printf("Removed task %d\n", c.ID)
	return nil
}
