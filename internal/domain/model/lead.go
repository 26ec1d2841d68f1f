package model

import "time"

// Lead is a CRM contact owned by exactly one user. All reads and
// mutations are scoped by OwnerID.
type Lead struct {
	ID        int64
	OwnerID   int64
	FirstName string
	LastName  string
	Email     string
	Company   string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
