package models

// NoteTag is the join row of the note/tag many-to-many relation.
// At most one row may exist per (NoteID, TagID) pair.
type NoteTag struct {
	ID     int64 `json:"id"`
	NoteID int64 `json:"noteId"`
	TagID  int64 `json:"tagId"`
}
