package models

import "time"

type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryShopping  Category = "Shopping"
	CategoryBills     Category = "Bills"
	CategoryFun       Category = "Fun"
	CategoryHealth    Category = "Health"
	CategoryOther     Category = "Other"
)

// Categories lists the fixed category enumeration in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryFun,
	CategoryHealth,
	CategoryOther,
}

// ParseCategory maps free-form input onto the closed enumeration,
// falling back to Other for anything unrecognized.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Expense represents a single spend. Amount may be NaN when the
// original input did not parse as a number; aggregates carry the NaN
// through rather than rejecting the record.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
