package models

import "time"

// CategoryColors is the fixed palette accepted for Category.Color.
var CategoryColors = []string{
	"red", "orange", "yellow", "green", "blue", "purple", "pink", "gray",
}

// ValidCategoryColor reports whether c belongs to the palette.
func ValidCategoryColor(c string) bool {
	for _, v := range CategoryColors {
		if v == c {
			return true
		}
	}
	return false
}

// Category labels an owner's notes with a colored marker; a note references
// at most one category.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCategory is the create payload for Category.
type NewCategory struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID int64  `json:"userId"`
}

// CategoryPatch is a partial update; ownership is immutable.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
