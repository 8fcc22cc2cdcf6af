// Package models holds the records the CLI exchanges with the server.
package models

import "time"

// Note mirrors the server's note representation.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Signup is the server's reply to a successful signup.
type Signup struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}
