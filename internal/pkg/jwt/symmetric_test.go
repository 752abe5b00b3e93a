package jwt

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

type fixedUUID struct{}

func (fixedUUID) Generate() string {
	return "0195d7a0-0000-7000-8000-000000000001"
}

func testConfig(ttl time.Duration, at time.Time) Config {
	return Config{
		Secret:    bytes.Repeat([]byte("s"), 64),
		Issuer:    "authify",
		Audiences: []string{"authify-web"},
		TTL:       ttl,
		Clock:     fixedClock{at: at},
		UUID:      fixedUUID{},
	}
}

func TestNewHS512SecretTooShort(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetricGenerateAndVerify(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s, err := NewHS512(testConfig(15*time.Minute, now))
	require.NoError(t, err)

	token, err := s.Generate("acc-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-123", claims.AccountID)
	assert.Equal(t, "user@example.com", claims.AccountEmail)
	assert.Equal(t, "acc-123", claims.Subject)
	assert.Equal(t, "authify", claims.Issuer)
}

func TestSymmetricVerifyExpired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)

	s, err := NewHS512(testConfig(time.Minute, past))
	require.NoError(t, err)

	token, err := s.Generate("acc-123", "user@example.com")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetricVerifyGarbage(t *testing.T) {
	s, err := NewHS512(testConfig(time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = s.Verify("not-a-token")
	assert.Error(t, err)
}
