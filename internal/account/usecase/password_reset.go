package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	Code        string `validate:"required,otp"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset completes a password reset. The code must match the stored
// one exactly; expiry is only checked after a match, and the code is consumed
// at most once even when two confirms race.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := checkChallenge(acc.ResetChallenge, in.Code, s.clock.Now(),
		"invalid reset code", "reset code has expired"); err != nil {
		return err
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	consumed, err := s.repoDB.ConsumeResetChallenge(ctx, acc.Email, in.Code, string(newHash))
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume reset challenge", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}
	if !consumed {
		// A concurrent confirm got there first; for this caller the code is gone.
		return goerror.NewBusiness("invalid reset code", goerror.CodeUnauthorized)
	}

	slog.InfoContext(ctx, "password reset completed", "account_id", acc.ID)

	return nil
}
