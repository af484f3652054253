package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenProvider_RoundTrip tests that claims survive a sign and parse.
func TestTokenProvider_RoundTrip(t *testing.T) {
	provider := NewTokenProvider("test-secret")

	token, err := provider.Generate("64b9f00000000000000000aa", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64b9f00000000000000000aa", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

// TestTokenProvider_EmptyRole tests that reset tokens carry no role claim.
func TestTokenProvider_EmptyRole(t *testing.T) {
	provider := NewTokenProvider("test-secret")

	token, err := provider.Generate("64b9f00000000000000000aa", "", 15*time.Minute)
	require.NoError(t, err)

	claims, err := provider.Parse(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

// TestTokenProvider_Expired tests the expiry mapping.
func TestTokenProvider_Expired(t *testing.T) {
	provider := NewTokenProvider("test-secret")

	token, err := provider.Generate("64b9f00000000000000000aa", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = provider.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

// TestTokenProvider_WrongSecret tests that a token signed elsewhere is
// rejected.
func TestTokenProvider_WrongSecret(t *testing.T) {
	token, err := NewTokenProvider("other-secret").Generate("64b9f00000000000000000aa", "admin", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenProvider("test-secret").Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// TestTokenProvider_Garbage tests that malformed input is rejected.
func TestTokenProvider_Garbage(t *testing.T) {
	provider := NewTokenProvider("test-secret")

	_, err := provider.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = provider.Parse("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
