package model

import "time"

// User represents a registered account identified by a unique email.
// PasswordHash is the only credential material that is ever persisted.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
