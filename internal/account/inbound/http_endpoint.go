package inbound

import (
	"github.com/authify-dev/authify/internal/account/usecase"
	"github.com/authify-dev/authify/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account and verification workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new account.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		ID:         resp.ID,
		Email:      resp.Email,
		FullName:   resp.FullName,
		IsVerified: resp.IsVerified,
	}, nil
}

// Login authenticates an account and returns an access token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{AccessToken: resp.AccessToken}, nil
}

// PasswordForgot initiates a password reset by emailing a one-time code.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return &PasswordForgotResponse{}, nil
}

// PasswordReset completes a password reset using the emailed code.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
}

// VerifySend sends (or resends) an email verification code.
func (h *HTTPEndpoint) VerifySend(r *router.Request) (any, error) {
	var req VerifySendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifySend(r.Context(), usecase.VerifySendInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return &VerifySendResponse{}, nil
}

// VerifyConfirm confirms an account's email using the emailed code.
func (h *HTTPEndpoint) VerifyConfirm(r *router.Request) (any, error) {
	var req VerifyConfirmRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.VerifyConfirm(r.Context(), usecase.VerifyConfirmInput{
		Email: req.Email,
		Code:  req.Code,
	})
}

// Profile returns the authenticated account's profile.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:         resp.ID,
		Email:      resp.Email,
		FullName:   resp.FullName,
		IsVerified: resp.IsVerified,
	}, nil
}
