package constants

const (
	// Reward points granted on qualifying completion events.
	RewardHabitCompletion = 10
	RewardTaskCompletion  = 5
)

const (
	// DayFormat is the calendar-day key used for habit dates and all
	// day-bucketed aggregation.
	DayFormat = "2006-01-02"
	// DayLabelFormat is the short month/day label used in chart output.
	DayLabelFormat = "Jan 2"
	// ChartDays is the length of the activity chart window.
	ChartDays = 7
	// RecentActivityLimit caps the combined recent-activity feed.
	RecentActivityLimit = 6
)
