// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a shipping destination owned by a user.
// At most one address per user carries IsDefault=true; the persistence layer
// enforces this inside a single transaction when a default changes.
type Address struct {
	ID          int64
	UserID      int64
	FullName    string
	PhoneNumber string
	Street      string
	City        string
	State       string
	Country     string
	PostalCode  string
	Latitude    float64
	Longitude   float64
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
