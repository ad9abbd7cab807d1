package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundtrip(t *testing.T) {
	s := newService()
	id := uuid.New()

	token, err := s.GenerateAccessToken(id, "recruiter@example.com")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.RecruiterID)
	assert.Equal(t, "recruiter@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.False(t, s.IsRefreshToken(claims))
}

func TestRefreshTokenCarriesEmail(t *testing.T) {
	s := newService()
	id := uuid.New()

	token, err := s.GenerateRefreshToken(id, "recruiter@example.com")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, s.IsRefreshToken(claims))
	assert.Equal(t, "recruiter@example.com", claims.Email)
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := newService()

	_, err := s.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpired(t *testing.T) {
	s := newService()
	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := s.GenerateAccessToken(uuid.New(), "x@example.com")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	other := NewHMACService("different", "secrets", 15*time.Minute, 24*time.Hour)
	token, err := other.GenerateAccessToken(uuid.New(), "x@example.com")
	require.NoError(t, err)

	_, err = newService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
