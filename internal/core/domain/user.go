package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Users sign in with Google; the service keeps
// no passwords.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	GoogleID  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a user from a verified Google profile.
func NewUser(email, fullName, googleID string) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		FullName:  fullName,
		GoogleID:  googleID,
		CreatedAt: time.Now().UTC(),
	}
}
