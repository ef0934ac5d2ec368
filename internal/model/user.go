package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	PublicID     string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest carries the form fields of a registration request.
type RegisterRequest struct {
	Email    string
	Username string
	Password string
}

// LoginRequest carries the form fields of a login request.
type LoginRequest struct {
	Email    string
	Password string
}
