package utils

import (
	"context"

	"printmill-be/internal/user"
)

type contextKey string

const userKey contextKey = "auth_user"

// SetUserContext stores the authenticated caller (set by middleware).
func SetUserContext(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// GetUserFromContext retrieves the authenticated caller safely.
func GetUserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}
