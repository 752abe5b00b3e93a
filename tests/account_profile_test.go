package tests

import (
	"net/http"
	"testing"
)

func TestProfile(t *testing.T) {

	// Arrange
	acc := registerAccount(t)
	loginResp := login(t, acc.Email, acc.Password)

	// Act
	status, body := doJSON(t, http.MethodGet, "/api/v1/account/profile", nil, loginResp.AccessToken)

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("profile failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		Email string `json:"email"`
	}
	decodeSuccess(t, body, &data)
	if data.Email != acc.Email {
		t.Fatalf("expected profile email %q, got %q", acc.Email, data.Email)
	}
}

func TestProfileWithoutToken(t *testing.T) {

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/account/profile", nil, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized without token, got status=%d", status)
	}
}
