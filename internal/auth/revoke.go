package auth

import (
	"sync"
	"time"
)

// Revoker remembers revoked token IDs until the tokens would have expired.
type Revoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewRevoker returns an empty revocation list.
func NewRevoker() *Revoker {
	return &Revoker{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke adds a token ID to the list.
func (r *Revoker) Revoke(jti string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revoked[jti] = expiresAt

	// Opportunistically clean up expired revocations.
	now := r.now()
	for id, exp := range r.revoked {
		if exp.Before(now) {
			delete(r.revoked, id)
		}
	}
}

// IsRevoked reports whether the token ID has been revoked.
func (r *Revoker) IsRevoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok
}

// Len returns the number of tracked revocations.
func (r *Revoker) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}
