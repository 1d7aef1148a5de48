package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// ErrRoleNotFound is returned when a role lookup matches nothing.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines persistence operations for roles, permissions and
// their link tables.
type RoleRepository interface {
	// FindRoleByName retrieves a role by its unique name.
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)

	// FindFirstRoleByUserID returns the first role linked to a user, or
	// ErrRoleNotFound when the user has no role links.
	FindFirstRoleByUserID(ctx context.Context, userID int64) (*entity.Role, error)

	// AssignRole links a role to a user. Assigning an already-linked role is a no-op.
	AssignRole(ctx context.Context, userID, roleID int64) error

	// EnsureRole creates a role by name if it does not exist and returns it.
	EnsureRole(ctx context.Context, name, description string) (*entity.Role, error)

	// EnsurePermission creates a permission by code if it does not exist and returns it.
	EnsurePermission(ctx context.Context, name, code, description string) (*entity.Permission, error)

	// GrantPermission links a permission to a role, idempotently.
	GrantPermission(ctx context.Context, roleID, permissionID int64) error
}
