package models

import "time"

// SleepSession represents one recorded stretch of sleep. Afternoon
// marks naps so day reports can split them from night sleep.
type SleepSession struct {
	ID        int64     `json:"id"`
	Hours     float64   `json:"hours"`
	Afternoon bool      `json:"isAfternoon"`
	CreatedAt time.Time `json:"createdAt"`
}
