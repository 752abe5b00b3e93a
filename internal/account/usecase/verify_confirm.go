package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/pkg/goerror"
)

type VerifyConfirmInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,otp"`
}

// VerifyConfirm completes email verification, flipping the account to
// verified and consuming the code. Verification is permanent.
func (s *Usecase) VerifyConfirm(ctx context.Context, in VerifyConfirmInput) error {
	ctx, span := s.startSpan(ctx, "VerifyConfirm")
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

	if err := checkChallenge(acc.VerifyChallenge, in.Code, s.clock.Now(),
		"invalid verification code", "verification code has expired"); err != nil {
		return err
	}

	consumed, err := s.repoDB.ConsumeVerifyChallenge(ctx, acc.Email, in.Code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume verify challenge", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}
	if !consumed {
		return goerror.NewBusiness("invalid verification code", goerror.CodeUnauthorized)
	}

	slog.InfoContext(ctx, "account verified", "account_id", acc.ID)

	return nil
}
