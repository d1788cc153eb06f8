package cli

import (
	"fmt"
	"os"
)

type MemoryAddCmd struct {
	Title string `arg:"" help:"Memory title."`
	File  string `arg:"" type:"existingfile" help:"Photo file."`
}

func (c *MemoryAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}

	m, err := trk.AddMemory(c.Title, raw)
	if err != nil {
		return err
	}
	fmt.Printf("Added memory: %s (ID: %d)\n", m.Title, m.ID)
	return nil
}

type MemoryListCmd struct{}

func (c *MemoryListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	memories := trk.Store().Memories()
	if len(memories) == 0 {
		fmt.Println("No memories found")
		return nil
	}

	fmt.Println("Memories:")
	for _, m := range memories {
		fmt.Printf("  %s  %s (ID: %d)\n", formatDay(m.CreatedAt), m.Title, m.ID)
	}
	return nil
}

type MemoryRmCmd struct {
	ID int64 `arg:"" help:"Memory ID."`
}

func (c *MemoryRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveMemory(c.ID)
	fmt.Printf("Removed memory %d\n", c.ID)
	return nil
}
