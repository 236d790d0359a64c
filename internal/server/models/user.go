package models

import "time"

// User is created on first successful external authentication. UID is the
// stable identifier issued by the external identity provider; profile fields
// are never edited through this service.
type User struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PhotoURL  *string   `json:"photoURL"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the create payload for User.
type NewUser struct {
	UID      string  `json:"uid"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photoURL"`
}
