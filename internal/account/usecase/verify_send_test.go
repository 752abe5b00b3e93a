package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySend(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "user@example.com", "longenough", false)

	err := f.uc.VerifySend(t.Context(), VerifySendInput{Email: "user@example.com"})
	require.NoError(t, err)

	stored := f.repo.accounts["user@example.com"].VerifyChallenge
	require.NotNil(t, stored)
	assert.Equal(t, "123456", stored.Code)
	assert.Equal(t, f.clock.at.Add(24*time.Hour).UnixMilli(), stored.ExpiresAt)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, sentMail{kind: "verify", email: "user@example.com", code: "123456"}, f.notifier.sent[0])
}

func TestVerifySendUnknownAccount(t *testing.T) {
	f := newFixture(t)

	err := f.uc.VerifySend(t.Context(), VerifySendInput{Email: "ghost@example.com"})
	assertCode(t, err, goerror.CodeNotFound)
}

func TestVerifySendAlreadyVerified(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "user@example.com", "longenough", true)

	err := f.uc.VerifySend(t.Context(), VerifySendInput{Email: "user@example.com"})
	require.NoError(t, err)

	// Silent no-op: nothing stored, nothing sent.
	assert.Nil(t, f.repo.accounts["user@example.com"].VerifyChallenge)
	assert.Empty(t, f.notifier.sent)
}

func TestVerifySendReplacesOutstandingCode(t *testing.T) {
	f := newFixture(t)
	acc := f.seedAccount(t, "user@example.com", "longenough", false)
	acc.VerifyChallenge = &entity.Challenge{Code: "999999", ExpiresAt: f.clock.at.Add(time.Hour).UnixMilli()}

	require.NoError(t, f.uc.VerifySend(t.Context(), VerifySendInput{Email: "user@example.com"}))

	assert.Equal(t, "123456", f.repo.accounts["user@example.com"].VerifyChallenge.Code)

	err := f.uc.VerifyConfirm(t.Context(), VerifyConfirmInput{Email: "user@example.com", Code: "999999"})
	assertCode(t, err, goerror.CodeUnauthorized)
}

func TestVerifySendDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "user@example.com", "longenough", false)
	f.notifier.sendErr = errors.New("smtp: connection refused")

	err := f.uc.VerifySend(t.Context(), VerifySendInput{Email: "user@example.com"})
	assertCode(t, err, goerror.CodeDeliveryFailed)

	// The challenge stays persisted; confirming with it still works.
	require.NotNil(t, f.repo.accounts["user@example.com"].VerifyChallenge)

	f.notifier.sendErr = nil
	require.NoError(t, f.uc.VerifyConfirm(t.Context(), VerifyConfirmInput{Email: "user@example.com", Code: "123456"}))
	assert.True(t, f.repo.accounts["user@example.com"].IsVerified)
}
