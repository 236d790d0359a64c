package models

import "time"

// Folder groups an owner's notes; a note references at most one folder.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFolder is the create payload for Folder.
type NewFolder struct {
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
}

// FolderPatch is a partial update; ownership is immutable.
type FolderPatch struct {
	Name *string `json:"name"`
}
