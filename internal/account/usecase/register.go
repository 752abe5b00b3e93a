package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/authify-dev/authify/internal/account/entity"
	"github.com/authify-dev/authify/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=2,max=100"`
}

type RegisterOutput struct {
	ID         string
	Email      string
	FullName   string
	IsVerified bool
}

// Register creates a new account. The email is stored exactly as given; two
// registrations differing only in case are two distinct accounts.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	acc := entity.Account{
		ID:         s.uuid.Generate(),
		Email:      in.Email,
		FullName:   in.FullName,
		Password:   string(hashedPassword),
		IsVerified: false,
	}

	if err := s.repoDB.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			// Lost the race against a concurrent registration for the same email.
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create account", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "account registered", "account_id", acc.ID)

	return &RegisterOutput{
		ID:         acc.ID,
		Email:      acc.Email,
		FullName:   acc.FullName,
		IsVerified: acc.IsVerified,
	}, nil
}
