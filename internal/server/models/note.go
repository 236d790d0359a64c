// Package models defines the entities of the notes service and the payload
// types used by the mutation API. Shapes follow the wire contract consumed
// by the web client.
package models

import (
	"encoding/json"
	"time"
)

// Note is the central entity. Content is an opaque rich-text document (a
// tree of typed nodes) that this service stores and round-trips without
// interpretation. FolderID and CategoryID are nullable references to the
// owner's folders and categories.
type Note struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Content    json.RawMessage `json:"content"`
	UserID     int64           `json:"userId"`
	FolderID   *int64          `json:"folderId"`
	CategoryID *int64          `json:"categoryId"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// NewNote is the create payload for Note.
type NewNote struct {
	Title      string          `json:"title"`
	Content    json.RawMessage `json:"content"`
	UserID     int64           `json:"userId"`
	FolderID   *int64          `json:"folderId"`
	CategoryID *int64          `json:"categoryId"`
}

// NotePatch is a partial update. Omitted fields leave the stored value
// untouched. FolderID and CategoryID are tri-state so that an explicit
// null clears the reference, which a plain pointer cannot express.
// A nil Content means "not provided"; the literal JSON null sets the
// content to null.
type NotePatch struct {
	Title      *string         `json:"title"`
	Content    json.RawMessage `json:"content"`
	FolderID   OptionalID      `json:"folderId"`
	CategoryID OptionalID      `json:"categoryId"`
}
