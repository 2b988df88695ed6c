package models

import "time"

// ContactMessage represents a message submitted by a visitor.
// Messages are append-only; the admin can only list and delete them.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
