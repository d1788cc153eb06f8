package models

import "time"

// Memory represents a photo memory. Unlike a task photo, the photo is
// mandatory at creation.
type Memory struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Photo     string    `json:"photo"` // data URI
	CreatedAt time.Time `json:"createdAt"`
}
