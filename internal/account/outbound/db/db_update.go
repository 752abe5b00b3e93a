package db

import (
	"context"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/goerror"
)

const setResetChallenge = `
UPDATE accounts
SET reset_code = $2, reset_code_expires_at = $3, updated_at = now()
WHERE email = $1
`

// SetResetChallenge stores a fresh reset code, replacing any outstanding one.
func (s *DB) SetResetChallenge(ctx context.Context, email string, ch entity.Challenge) (err error) {
	ctx, span := s.startSpan(ctx, "SetResetChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, setResetChallenge, email, ch.Code, ch.ExpiresAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const setVerifyChallenge = `
UPDATE accounts
SET verify_code = $2, verify_code_expires_at = $3, updated_at = now()
WHERE email = $1
`

// SetVerifyChallenge stores a fresh verification code, replacing any outstanding one.
func (s *DB) SetVerifyChallenge(ctx context.Context, email string, ch entity.Challenge) (err error) {
	ctx, span := s.startSpan(ctx, "SetVerifyChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, setVerifyChallenge, email, ch.Code, ch.ExpiresAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const consumeResetChallenge = `
UPDATE accounts
SET password = $3, reset_code = NULL, reset_code_expires_at = 0, updated_at = now()
WHERE email = $1 AND reset_code = $2
`

// ConsumeResetChallenge atomically swaps the password and clears the reset
// code, guarded on the code still matching. When two confirms race, only one
// UPDATE hits a row; the loser sees consumed=false.
func (s *DB) ConsumeResetChallenge(ctx context.Context, email, code, newPasswordHash string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ConsumeResetChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, consumeResetChallenge, email, code, newPasswordHash)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

const consumeVerifyChallenge = `
UPDATE accounts
SET is_verified = TRUE, verify_code = NULL, verify_code_expires_at = 0, updated_at = now()
WHERE email = $1 AND verify_code = $2
`

// ConsumeVerifyChallenge atomically marks the account verified and clears the
// verification code, guarded on the code still matching.
func (s *DB) ConsumeVerifyChallenge(ctx context.Context, email, code string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ConsumeVerifyChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, consumeVerifyChallenge, email, code)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}
