// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user.
type User struct {
	ID uint `gorm:"primaryKey"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
