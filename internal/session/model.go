package session

import "time"

// Session maps an opaque bearer token to a user. ExpiresAt is stored for
// every session but is advisory: Authenticate never compares it against the
// clock, matching the sessions already in the wild with expires_at = 0.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt int64
	CreatedAt time.Time
}
