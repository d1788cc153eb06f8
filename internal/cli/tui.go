package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	// Automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	// A fault anywhere in update/view takes down the whole session:
	// no partial recovery, unsaved in-memory state is lost, the
	// persisted store is intact. Relaunching starts fresh from disk.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("interface crashed", "panic", r)
			fmt.Fprintln(os.Stderr, "Something went wrong rendering the interface.")
			fmt.Fprintln(os.Stderr, "Your data is safe on disk; run 'lifelog tui' to start over.")
			os.Exit(1)
		}
	}()

	p := tea.NewProgram(tui.NewModel(trk), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
