package models

import "time"

// Loan represents money lent to another person.
// DateReturned is set exactly when Returned flips true and cleared
// when it flips back false.
type Loan struct {
	ID           int64      `json:"id"`
	Person       string     `json:"person"`
	Amount       float64    `json:"amount"`
	Note         string     `json:"note,omitempty"`
	Returned     bool       `json:"returned"`
	DateGiven    time.Time  `json:"dateGiven"`
	DateReturned *time.Time `json:"dateReturned,omitempty"`
}
