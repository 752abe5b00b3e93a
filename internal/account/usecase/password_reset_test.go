package usecase

import (
	"testing"
	"time"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/goerror"
	"github.com/authify-dev/authify/internal/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordReset(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.Add(15 * time.Minute).UnixMilli()}

	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	stored := f.repo.accounts["user@example.com"]
	assert.Nil(t, stored.ResetChallenge, "code is consumed")
	assert.True(t, hash.NewBcrypt(bcrypt.MinCost, "").Verify(stored.Password, "brand-new-pass"))
	assert.False(t, hash.NewBcrypt(bcrypt.MinCost, "").Verify(stored.Password, "old-password"))
}

func TestPasswordResetUnknownAccount(t *testing.T) {
	f := newFixture(t)

	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "ghost@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	assertCode(t, err, goerror.CodeNotFound)
}

func TestPasswordResetWrongCode(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.Add(15 * time.Minute).UnixMilli()}

	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "654321",
		NewPassword: "brand-new-pass",
	})
	assertCode(t, err, goerror.CodeUnauthorized)

	// The code survives a failed attempt.
	assert.NotNil(t, f.repo.accounts["user@example.com"].ResetChallenge)
}

func TestPasswordResetNoOutstandingCode(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "user@example.com", "old-password", true)

	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	assertCode(t, err, goerror.CodeUnauthorized)
}

func TestPasswordResetExpiredCode(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.Add(-time.Millisecond).UnixMilli()}

	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	assertCode(t, err, goerror.CodeGone)
}

func TestPasswordResetExpiryBoundary(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.UnixMilli()}

	// A code expiring at exactly the current millisecond is still accepted.
	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)
}

func TestPasswordResetWrongCodeReportedBeforeExpiry(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.Add(-time.Hour).UnixMilli()}

	// Expired and mismatched: the mismatch wins.
	err := f.uc.PasswordReset(t.Context(), PasswordResetInput{
		Email:       "user@example.com",
		Code:        "654321",
		NewPassword: "brand-new-pass",
	})
	assertCode(t, err, goerror.CodeUnauthorized)
}

func TestPasswordResetLostConsumeRace(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "old-password", true)
	acc.ResetChallenge = &entity.Challenge{Code: "123456", ExpiresAt: f.clock.at.Add(15 * time.Minute).UnixMilli()}

	in := PasswordResetInput{
		Email:       "user@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	}
	require.NoError(t, f.uc.PasswordReset(t.Context(), in))

	// Second confirm with the same code loses the race.
	err := f.uc.PasswordReset(t.Context(), in)
	assertCode(t, err, goerror.CodeUnauthorized)
}
