package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/lifelog/internal/backup"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if _, err := ctx.Tracker(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	// Check 2: single writer (warning only)
	if others, err := otherLifelogProcesses(); err != nil {
		fmt.Printf("⚠ Single writer: UNKNOWN\n")
		fmt.Printf("   %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Single writer: WARNING\n")
		fmt.Printf("   %d other lifelog process(es) running; sharing one store is not supported\n", len(others))
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Provider.Path())
	if backups, err := mgr.ListBackups(); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   no backups yet, run 'lifelog backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 4: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// otherLifelogProcesses finds lifelog processes besides this one. The
// store assumes a single writer, so concurrent instances are worth
// flagging.
func otherLifelogProcesses() ([]ps.Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	var others []ps.Process
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == "lifelog" {
			others = append(others, p)
		}
	}
	return others, nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range")
	}
	return nil
}
