// Package models defines server-side records persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/cryptox"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser builds an unsaved User with the password already hashed. The
// plaintext is not retained. ID is assigned by the store on insert.
func NewUser(userName, password string, now time.Time) (*User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		UserName:     userName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
