// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The password hash lives here because email/password is the only credential
// kind the system supports; it must never be serialized outward.
type User struct {
	ID             uuid.UUID // The unique identifier for the user.
	Email          string    // The user's login identifier. Unique, matched case-sensitively.
	PasswordHash   string    // Argon2id PHC-encoded hash of the user's password. Never plaintext.
	Name           string    // The user's display name.
	City           string    // Optional profile attribute.
	PhoneNumber    string    // Optional profile attribute.
	ProfilePicture string    // Optional URL of the user's profile picture.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}
