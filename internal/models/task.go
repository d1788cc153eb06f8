package models

import "time"

// Task represents a single to-do item.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	Photo     string    `json:"photo,omitempty"` // data URI, attached post-creation
	CreatedAt time.Time `json:"createdAt"`
}
