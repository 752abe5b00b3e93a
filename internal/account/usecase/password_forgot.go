package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

// PasswordForgot starts (or restarts) a password reset. A fresh code is
// always issued, replacing any outstanding one, which immediately invalidates
// the old code. The challenge is persisted before the email is sent; a
// delivery failure leaves it in place.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset requested for unknown account", "email", in.Email)
		return goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	ch, err := s.issueChallenge(ctx, s.cfg.GetMinute("modules.account.reset_code_ttl_minutes"))
	if err != nil {
		return err
	}

	if err := s.repoDB.SetResetChallenge(ctx, acc.Email, ch); err != nil {
		slog.ErrorContext(ctx, "failed to repo set reset challenge", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendPasswordResetCode(ctx, acc.Email, ch.Code); err != nil {
		slog.ErrorContext(ctx, "failed to send password reset code", "account_id", acc.ID, "error", err)
		return goerror.NewBusiness("unable to send password reset email", goerror.CodeDeliveryFailed)
	}

	return nil
}
