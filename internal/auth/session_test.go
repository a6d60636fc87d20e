package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/custodian/internal/model"
)

func TestSessionContext(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)

	token, err := GenerateToken("k", model.User{Username: "user", Role: model.RoleUser})
	require.NoError(t, err)
	claims, err := ValidateToken("k", token)
	require.NoError(t, err)

	ctx := WithSession(context.Background(), SessionFromClaims(claims))
	s, ok := SessionFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "user", s.Username)
	assert.False(t, s.IsAdmin())
	assert.Equal(t, claims.ID, s.TokenID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), s.ExpiresAt, 5*time.Second)
}

func TestRevoker(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRevoker()
	r.now = func() time.Time { return now }

	r.Revoke("old", now.Add(time.Hour))
	assert.True(t, r.IsRevoked("old"))
	assert.False(t, r.IsRevoked("other"))

	now = now.Add(2 * time.Hour)
	r.Revoke("new", now.Add(time.Hour))
	assert.False(t, r.IsRevoked("old"), "expired revocation should be dropped")
	assert.True(t, r.IsRevoked("new"))
	assert.Equal(t, 1, r.Len())
}
