package models

import (
	"time"
)

type User struct {
	ID        int       `db:"id"         json:"id"`
	GoogleID  string    `db:"google_id"  json:"google_id"`
	Email     string    `db:"email"      json:"email"`
	Name      string    `db:"name"       json:"name"`
	Picture   *string   `db:"picture"    json:"picture"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SessionClaims is the identity encoded in a session token.
type SessionClaims struct {
	UserID int
	Email  string
}

// SignInResult is the outcome of a successful Google sign-in: a freshly
// signed session token plus the signed-in user.
type SignInResult struct {
	Token string
	User  *User
}
