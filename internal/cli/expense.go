package cli

import (
	"fmt"

	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/report"
)

type ExpenseAddCmd struct {
	Description string `arg:"" help:"What the money went to."`
	Amount      string `arg:"" help:"Amount spent."`
	Category    string `short:"c" help:"Category (Food|Transport|Shopping|Bills|Fun|Health|Other)." default:"Other"`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	e := trk.AddExpense(c.Description, c.Amount, models.ParseCategory(c.Category))
	fmt.Printf("Added expense: %s %s (%s, ID: %d)\n", e.Description, formatAmount(e.Amount), e.Category, e.ID)
	return nil
}

type ExpenseListCmd struct{}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	expenses := trk.Store().Expenses()
	if len(expenses) == 0 {
		fmt.Println("No expenses found")
		return nil
	}

	fmt.Println("Expenses:")
	for _, e := range expenses {
		fmt.Printf("  %s  %-24s %8s  %s (ID: %d)\n",
			formatDay(e.CreatedAt), e.Description, formatAmount(e.Amount), e.Category, e.ID)
	}
	fmt.Printf("\nTotal: %s\n", formatAmount(report.TotalExpenses(expenses)))
	return nil
}

type ExpenseRmCmd struct {
	ID int64 `arg:"" help:"Expense ID."`
}

func (c *ExpenseRmCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	trk.RemoveExpense(c.ID)
	fmt.Printf("Removed expense %d\n", c.ID)
	return nil
}
