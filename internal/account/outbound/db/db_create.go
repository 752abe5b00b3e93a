package db

import (
	"context"

	"github.com/authify-dev/authify/internal/account/entity"
)

const createAccount = `
INSERT INTO accounts (id, email, full_name, password, is_verified)
VALUES ($1, $2, $3, $4, $5)
`

func (s *DB) CreateAccount(ctx context.Context, in entity.Account) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createAccount, in.ID, in.Email, in.FullName, in.Password, in.IsVerified)
	err = s.mapError(err)
	return err
}
