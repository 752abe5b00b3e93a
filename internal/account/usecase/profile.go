package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/pkg/goerror"
	"github.com/authify-dev/authify/internal/pkg/jwt"
)

type ProfileOutput struct {
	ID         string
	Email      string
	FullName   string
	IsVerified bool
}

// Profile returns the public view of the authenticated account.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, clm.AccountEmail)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account from token no longer exists", "email", clm.AccountEmail)
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", clm.AccountEmail, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		ID:         acc.ID,
		Email:      acc.Email,
		FullName:   acc.FullName,
		IsVerified: acc.IsVerified,
	}, nil
}
