package tests

import (
	"net/http"
	"testing"
)

func TestPasswordForgot(t *testing.T) {

	// Arrange
	acc := registerAccount(t)
	payload := map[string]string{"email": acc.Email}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/account/password/forgot", payload, "")

	// Assert
	if status != http.StatusOK && status != http.StatusBadGateway {
		errEnv := decodeError(t, body)
		t.Fatalf("password forgot failed: status=%d message=%q", status, errEnv.Message)
	}
}

func TestPasswordForgotUnknownEmail(t *testing.T) {

	// Arrange
	payload := map[string]string{"email": uniqueEmail("real-unknown")}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/account/password/forgot", payload, "")

	// Assert
	if status != http.StatusNotFound {
		t.Fatalf("expected not found for unknown email, got status=%d", status)
	}
}

func TestPasswordResetWrongCode(t *testing.T) {

	// Arrange
	acc := registerAccount(t)
	payload := map[string]string{
		"email":        acc.Email,
		"code":         "000000",
		"new_password": "AnotherSecret1!",
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/account/password/reset", payload, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized for wrong reset code, got status=%d", status)
	}
}
