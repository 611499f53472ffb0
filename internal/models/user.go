package models

import (
	"time"
)

// User is the authenticated user as seen by the client.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authenticated-user context identified by a bearer token.
type Session struct {
	Token string `json:"-"`
	User  User   `json:"user"`
}

// UserAccount is the story API's persisted user.
type UserAccount struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email          string `gorm:"size:320;uniqueIndex;not null"`
	Name           string `gorm:"size:120"`
	HashedPassword string `gorm:"size:255;not null"`
}
