package cli

import (
	"fmt"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/report"
)

type LoanAddCmd struct {
	Person string `arg:"" help:"Who the money went to."`
	Amount string `arg:"" help:"Amount lent."`
	Note   string `arg:"" optional:"" help:"Optional note."`
}

func (c *LoanAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	l := trk.AddLoan(c.Person, c.Amount, c.Note)
	fmt.Printf("Added loan: %s owes %s (ID: %d)\n", l.Person, formatAmount(l.Amount), l.ID)
	return nil
}

type LoanReturnCmd struct {
	ID int64 `arg:"" help:"Loan ID."`
}

func (c *LoanReturnCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.ToggleLoanReturned(c.ID)

	for _, l := range trk.Store().Loans() {
		if l.ID == c.ID {
			if l.Returned {
				fmt.Printf("✓ %s paid back %s on %s\n", l.Person, formatAmount(l.Amount), formatDay(*l.DateReturned))
			} else {
				fmt.Printf("○ loan to %s marked outstanding again\n", l.Person)
			}
			return nil
		}
	}
	fmt.Printf("No loan with ID %d\n", c.ID)
	return nil
}

type LoanListCmd struct {
	PendingOnly bool `help:"Show only outstanding loans."`
}

func (c *LoanListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	loans := trk.Store().Loans()
	if len(loans) == 0 {
		fmt.Println("No loans found")
		return nil
	}

	fmt.Println("Loans:")
	for _, l := range loans {
		if c.PendingOnly && l.Returned {
			continue
		}

		fmt.Printf("  %s  %-16s %8s  [%s] (ID: %d)\n",
			formatDay(l.DateGiven), l.Person, formatAmount(l.Amount), loanStatus(l), l.ID)
		if l.Note != "" {
			fmt.Printf("      Note: %s\n", l.Note)
		}
	}
	fmt.Printf("\nOutstanding total: %s\n", formatAmount(report.PendingLoanTotal(loans)))
	return nil
}

// loanStatus describes a loan's repayment state. Imported documents
// are not validated beyond their shape, so a returned loan may carry
// no return date.
func loanStatus(l models.Loan) string {
	if !l.Returned {
		return "outstanding"
	}
	if l.DateReturned == nil {
		return "returned"
	}
	return "returned " + formatDay(*l.DateReturned)
}

type LoanRmCmd struct {
	ID int64 `arg:"" help:"Loan ID."`
}

func (c *LoanRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveLoan(c.ID)
	fmt.Printf("Removed loan %d\n", c.ID)
	return nil
}
