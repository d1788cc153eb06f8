package models

import "testing"

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{Dates: []string{"2025-03-08", "2025-03-10"}}

	if !h.CompletedOn("2025-03-10") {
		t.Errorf("expected 2025-03-10 completed")
	}
	if h.CompletedOn("2025-03-09") {
		t.Errorf("expected 2025-03-09 not completed")
	}
	if (Habit{}).CompletedOn("2025-03-10") {
		t.Errorf("empty habit should have no completions")
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"Food", CategoryFood},
		{"Transport", CategoryTransport},
		{"Health", CategoryHealth},
		{"food", CategoryOther},  // case sensitive
		{"Snacks", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
