package db

import (
	"context"

	"github.com/authify-dev/authify/internal/account/entity"
)

const getAccountByEmail = `
SELECT id, email, full_name, password, is_verified,
       reset_code, reset_code_expires_at,
       verify_code, verify_code_expires_at,
       created_at, updated_at
FROM accounts
WHERE email = $1
`

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	var (
		acc             entity.Account
		resetCode       *string
		resetExpiresAt  int64
		verifyCode      *string
		verifyExpiresAt int64
	)

	err = s.conn.QueryRow(ctx, getAccountByEmail, email).Scan(
		&acc.ID,
		&acc.Email,
		&acc.FullName,
		&acc.Password,
		&acc.IsVerified,
		&resetCode,
		&resetExpiresAt,
		&verifyCode,
		&verifyExpiresAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	if resetCode != nil {
		acc.ResetChallenge = &entity.Challenge{Code: *resetCode, ExpiresAt: resetExpiresAt}
	}
	if verifyCode != nil {
		acc.VerifyChallenge = &entity.Challenge{Code: *verifyCode, ExpiresAt: verifyExpiresAt}
	}

	return &acc, nil
}
