package cli

import "fmt"

type NoteAddCmd struct {
	Title   string `arg:"" help:"Note title."`
	Content string `arg:"" optional:"" help:"Note content."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	n := trk.AddNote(c.Title, c.Content)
	fmt.Printf("Added note: %s (ID: %d)\n", n.Title, n.ID)
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	notes := trk.Store().Notes()
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	fmt.Println("Notes:")
	for _, n := range notes {
		fmt.Printf("  %s  %s (ID: %d)\n", formatDay(n.CreatedAt), n.Title, n.ID)
		if n.Content != "" {
			fmt.Printf("      %s\n", n.Content)
		}
	}
	return nil
}

type NoteRmCmd struct {
	ID int64 `arg:"" help:"Note ID."`
}

func (c *NoteRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveNote(c.ID)
	fmt.Printf("Removed note %d\n", c.ID)
	return nil
}
