package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/pkg/goerror"
)

type VerifySendInput struct {
	Email string `validate:"required,email"`
}

// VerifySend starts (or restarts) email verification. Requesting a code for
// an already-verified account is a silent no-op: nothing is written and no
// email is sent. Otherwise a fresh code replaces any outstanding one.
func (s *Usecase) VerifySend(ctx context.Context, in VerifySendInput) error {
	ctx, span := s.startSpan(ctx, "VerifySend")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "verification requested for unknown account", "email", in.Email)
		return goerror.NewBusiness("account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if acc.IsVerified {
		return nil
	}

	ch, err := s.issueChallenge(ctx, s.cfg.GetHour("modules.account.verify_code_ttl_hours"))
	if err != nil {
		return err
	}

	if err := s.repoDB.SetVerifyChallenge(ctx, acc.Email, ch); err != nil {
		slog.ErrorContext(ctx, "failed to repo set verify challenge", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendVerificationCode(ctx, acc.Email, ch.Code); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code", "account_id", acc.ID, "error", err)
		return goerror.NewBusiness("unable to send verification email", goerror.CodeDeliveryFailed)
	}

	return nil
}
