// Package models defines the records shared by every store backend.
package models

import "fmt"

// UserProfile is a directory entry. Profiles are provisioned offline and are
// read-only at runtime.
type UserProfile struct {
	Login string `bson:"login" db:"login"`
	Name  string `bson:"name" db:"name"`
	Email string `bson:"email" db:"email"`
	Age   int    `bson:"age" db:"age"`
}

// Tooltip renders the fixed three-line profile summary shown next to a user.
func (u UserProfile) Tooltip() string {
	return fmt.Sprintf("Email: %s\nLogin: %s\nAge: %d", u.Email, u.Login, u.Age)
}
