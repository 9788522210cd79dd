package auth

import "time"

// User - A dashboard account. Passwords are stored as bcrypt hashes.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
