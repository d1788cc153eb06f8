package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog/internal/snapshot"
)

type ExportCmd struct {
	File string `arg:"" optional:"" help:"Destination file (defaults to lifelog-export-<date>.json)."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	now := time.Now()
	data, err := snapshot.Export(trk.Store().Snapshot(), now)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	file := c.File
	if file == "" {
		file = fmt.Sprintf("lifelog-export-%s.json", now.Format("20060102"))
	}

	if err := os.WriteFile(file, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Exported to %s\n", file)
	return nil
}

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Export file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Import will replace every collection present in the file.").
				Description(fmt.Sprintf("Import from %s?", c.File)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if err := snapshot.Import(data, trk.Store()); err != nil {
		var fe *snapshot.FormatError
		if errors.As(err, &fe) {
			return fmt.Errorf("import failed, store unchanged: %w", err)
		}
		return err
	}

	// Imported IDs may postdate anything assigned so far.
	seedLastID(trk, trk.Store().Snapshot())

	if err := ctx.Provider.Save(trk.Store().Snapshot()); err != nil {
		return fmt.Errorf("import applied but persisting failed: %w", err)
	}

	fmt.Println("✓ Import complete")
	return nil
}
