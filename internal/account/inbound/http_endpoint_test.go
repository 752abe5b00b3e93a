package inbound

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/authify-dev/authify/internal/account/usecase"
	"github.com/authify-dev/authify/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUC struct {
	registerIn  *usecase.RegisterInput
	loginIn     *usecase.LoginInput
	forgotIn    *usecase.PasswordForgotInput
	resetIn     *usecase.PasswordResetInput
	sendIn      *usecase.VerifySendInput
	confirmIn   *usecase.VerifyConfirmInput
	profileHits int
}

func (f *fakeUC) Register(_ context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.registerIn = &in
	return &usecase.RegisterOutput{ID: "acc-1", Email: in.Email, FullName: in.FullName}, nil
}

func (f *fakeUC) Login(_ context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.loginIn = &in
	return &usecase.LoginOutput{AccessToken: "token"}, nil
}

func (f *fakeUC) PasswordForgot(_ context.Context, in usecase.PasswordForgotInput) error {
	f.forgotIn = &in
	return nil
}

func (f *fakeUC) PasswordReset(_ context.Context, in usecase.PasswordResetInput) error {
	f.resetIn = &in
	return nil
}

func (f *fakeUC) VerifySend(_ context.Context, in usecase.VerifySendInput) error {
	f.sendIn = &in
	return nil
}

func (f *fakeUC) VerifyConfirm(_ context.Context, in usecase.VerifyConfirmInput) error {
	f.confirmIn = &in
	return nil
}

func (f *fakeUC) Profile(context.Context) (*usecase.ProfileOutput, error) {
	f.profileHits++
	return &usecase.ProfileOutput{ID: "acc-1", Email: "user@example.com"}, nil
}

func jsonRequest(body string) *router.Request {
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return &router.Request{Request: req}
}

func TestRegisterEndpoint(t *testing.T) {
	fake := &fakeUC{}
	end := &HTTPEndpoint{uc: fake}

	resp, err := end.Register(jsonRequest(`{"email":"a@b.co","password":"longenough","full_name":"A B"}`))
	require.NoError(t, err)

	require.NotNil(t, fake.registerIn)
	assert.Equal(t, "a@b.co", fake.registerIn.Email)
	assert.Equal(t, "A B", fake.registerIn.FullName)

	out, ok := resp.(RegisterResponse)
	require.True(t, ok)
	assert.Equal(t, "acc-1", out.ID)
}

func TestRegisterEndpointBadBody(t *testing.T) {
	end := &HTTPEndpoint{uc: &fakeUC{}}

	_, err := end.Register(jsonRequest(`{"email":`))
	require.Error(t, err)
}

func TestPasswordResetEndpoint(t *testing.T) {
	fake := &fakeUC{}
	end := &HTTPEndpoint{uc: fake}

	resp, err := end.PasswordReset(jsonRequest(`{"email":"a@b.co","code":"123456","new_password":"longenough"}`))
	require.NoError(t, err)
	assert.Nil(t, resp)

	require.NotNil(t, fake.resetIn)
	assert.Equal(t, "123456", fake.resetIn.Code)
	assert.Equal(t, "longenough", fake.resetIn.NewPassword)
}

func TestVerifyConfirmEndpoint(t *testing.T) {
	fake := &fakeUC{}
	end := &HTTPEndpoint{uc: fake}

	resp, err := end.VerifyConfirm(jsonRequest(`{"email":"a@b.co","code":"654321"}`))
	require.NoError(t, err)
	assert.Nil(t, resp)

	require.NotNil(t, fake.confirmIn)
	assert.Equal(t, "654321", fake.confirmIn.Code)
}

func TestProfileEndpoint(t *testing.T) {
	fake := &fakeUC{}
	end := &HTTPEndpoint{uc: fake}

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := end.Profile(&router.Request{Request: req})
	require.NoError(t, err)

	out, ok := resp.(ProfileResponse)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", out.Email)
	assert.Equal(t, 1, fake.profileHits)
}
