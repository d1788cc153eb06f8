package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Store file path." type:"path" default:"~/.config/lifelog/lifelog.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize lifelog storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Stats  cli.StatsCmd  `cmd:"" help:"Show today's totals and recent activity."`
	Chart  cli.ChartCmd  `cmd:"" help:"Show the 7-day activity chart."`
	Export cli.ExportCmd `cmd:"" help:"Export everything to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Import a previously exported JSON file."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle today's completion."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Rm     cli.HabitRmCmd     `cmd:"" help:"Remove a habit."`
	} `cmd:"" help:"Track habits."`

	Task struct {
		Add   cli.TaskAddCmd   `cmd:"" help:"Add a new task."`
		Done  cli.TaskDoneCmd  `cmd:"" help:"Toggle a task's completion."`
		List  cli.TaskListCmd  `cmd:"" help:"List all tasks."`
		Photo cli.TaskPhotoCmd `cmd:"" help:"Attach a photo to a task."`
		Rm    cli.TaskRmCmd    `cmd:"" help:"Remove a task."`
	} `cmd:"" help:"Track tasks."`

	Expense struct {
		Add  cli.ExpenseAddCmd  `cmd:"" help:"Record an expense."`
		List cli.ExpenseListCmd `cmd:"" help:"List all expenses."`
		Rm   cli.ExpenseRmCmd   `cmd:"" help:"Remove an expense."`
	} `cmd:"" help:"Track expenses."`

	Note struct {
		Add  cli.NoteAddCmd  `cmd:"" help:"Add a note."`
		List cli.NoteListCmd `cmd:"" help:"List all notes."`
		Rm   cli.NoteRmCmd   `cmd:"" help:"Remove a note."`
	} `cmd:"" help:"Keep notes."`

	Memory struct {
		Add  cli.MemoryAddCmd  `cmd:"" help:"Save a photo memory."`
		List cli.MemoryListCmd `cmd:"" help:"List all memories."`
		Rm   cli.MemoryRmCmd   `cmd:"" help:"Remove a memory."`
	} `cmd:"" help:"Keep photo memories."`

	Loan struct {
		Add    cli.LoanAddCmd    `cmd:"" help:"Record money lent."`
		Return cli.LoanReturnCmd `cmd:"" help:"Toggle a loan's returned state."`
		List   cli.LoanListCmd   `cmd:"" help:"List all loans."`
		Rm     cli.LoanRmCmd     `cmd:"" help:"Remove a loan."`
	} `cmd:"" help:"Track informal loans."`

	Sleep struct {
		Add    cli.SleepAddCmd    `cmd:"" help:"Log a sleep session."`
		List   cli.SleepListCmd   `cmd:"" help:"List all sleep sessions."`
		Report cli.SleepReportCmd `cmd:"" help:"Per-day sleep split."`
		Rm     cli.SleepRmCmd     `cmd:"" help:"Remove a sleep session."`
	} `cmd:"" help:"Track sleep."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifelog"),
		kong.Description("Personal life tracker: habits, tasks, expenses, sleep, notes, memories, loans"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(CLI.Data),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Data, ".json") {
		store = storage.NewJSONStore(CLI.Data)
	} else {
		store = storage.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{Provider: store}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("failed to close store", "error", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
