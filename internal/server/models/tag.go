package models

import "time"

// Tag is associated many-to-many with notes through NoteTag.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTag is the create payload for Tag.
type NewTag struct {
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
}

// TagPatch is a partial update; ownership is immutable.
type TagPatch struct {
	Name *string `json:"name"`
}
