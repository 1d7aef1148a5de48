package entity

import "time"

// Role is a named bundle of permissions. Role names are unique.
type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Permission is a single named capability. Both the human-readable name and
// the machine code (e.g. "product:create") are unique.
type Permission struct {
	ID          int64
	Name        string
	Code        string
	Description string
	CreatedAt   time.Time
}

// UserRoleLink associates a user with a role.
type UserRoleLink struct {
	ID         int64
	UserID     int64
	RoleID     int64
	AssignedAt time.Time
}

// RolePermissionLink associates a role with a permission.
type RolePermissionLink struct {
	ID           int64
	RoleID       int64
	PermissionID int64
	CreatedAt    time.Time
}
