package auth

import (
	"context"
	"time"

	"github.com/erazemk/custodian/internal/model"
)

// Session is the authenticated user behind a request.
type Session struct {
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	TokenID   string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}

// SessionFromClaims builds a session from validated token claims.
func SessionFromClaims(c *Claims) Session {
	s := Session{Username: c.Username, Role: c.Role, TokenID: c.ID}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored in ctx, if any.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
