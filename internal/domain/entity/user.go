// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a unique account.
// Accounts are never hard-deleted; is_active gates access instead.
type User struct {
	ID           int64     // Auto-generated identifier for the user.
	Email        string    // The user's primary contact email, used as the login identifier. Unique.
	Username     string    // The user's display name.
	PasswordHash string    // Stores the bcrypt-hashed password.
	ProfilePic   string    // Object key or URL of the user's avatar.
	IsActive     bool      // Inactive users are locked out without deleting the row.
	IsAdmin      bool      // Grants administrative endpoints and is carried in token claims.
	IsVendor     bool      // Set when the user creates a vendor profile.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
