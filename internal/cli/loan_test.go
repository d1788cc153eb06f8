package cli

import (
	"testing"
	"time"

	"github.com/julianstephens/lifelog/internal/models"
)

func TestLoanStatus(t *testing.T) {
	given := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	returned := given.AddDate(0, 0, 3)

	cases := []struct {
		name string
		loan models.Loan
		want string
	}{
		{"outstanding", models.Loan{Person: "Sam", DateGiven: given}, "outstanding"},
		{"returned with date", models.Loan{Person: "Sam", Returned: true, DateGiven: given, DateReturned: &returned}, "returned 2025-03-13"},
		// An imported document can mark a loan returned without a
		// return date; listing must not blow up on it.
		{"returned without date", models.Loan{Person: "Sam", Returned: true, DateGiven: given}, "returned"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := loanStatus(tc.loan); got != tc.want {
				t.Fatalf("loanStatus = %q, want %q", got, tc.want)
			}
		})
	}
}
