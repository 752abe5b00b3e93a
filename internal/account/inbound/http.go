package inbound

import (
	"context"

	"github.com/authify-dev/authify/internal/account/usecase"
	"github.com/authify-dev/authify/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error

	VerifySend(ctx context.Context, in usecase.VerifySendInput) error
	VerifyConfirm(ctx context.Context, in usecase.VerifyConfirmInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Onboarding & Authentication
	r.POST("/api/v1/account/register", end.Register)
	r.POST("/api/v1/account/login", end.Login)

	// Password Recovery
	r.POST("/api/v1/account/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/account/password/reset", end.PasswordReset)

	// Email Verification
	r.POST("/api/v1/account/verify/send", end.VerifySend)
	r.POST("/api/v1/account/verify/confirm", end.VerifyConfirm)

	// Profile (need authenticated)
	r.GET("/api/v1/account/profile", end.Profile)
}
