package models

import "time"

// Note is a text note owned by exactly one user. OwnerID is fixed at creation.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"userId"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch carries the fields of a partial update. Nil means unchanged.
type NotePatch struct {
	Title *string
	Text  *string
}
