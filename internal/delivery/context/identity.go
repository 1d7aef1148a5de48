package context

import "context"

const (
	// KeyUserID is the key for storing the authenticated user's ID in context.
	KeyUserID ContextKey = "user_id"

	// KeyIsAdmin is the key for storing the admin flag in context.
	KeyIsAdmin ContextKey = "is_admin"
)

// WithUserID returns a new context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserID extracts the authenticated user's ID from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyUserID).(int64)

	return id, ok
}

// WithIsAdmin returns a new context carrying the caller's admin flag.
func WithIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, KeyIsAdmin, isAdmin)
}

// IsAdmin reports whether the caller is an administrator.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(KeyIsAdmin).(bool)

	return admin
}
