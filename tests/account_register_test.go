package tests

import (
	"net/http"
	"testing"
)

func TestRegister(t *testing.T) {

	// Arrange
	payload := map[string]string{
		"email":     uniqueEmail("real-register"),
		"password":  "Secret123!",
		"full_name": "Test Account",
	}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/account/register", payload, "")

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("register failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		IsVerified bool   `json:"is_verified"`
	}
	decodeSuccess(t, body, &data)
	if data.ID == "" {
		t.Fatal("register response missing account id")
	}
	if data.IsVerified {
		t.Fatal("new account must start unverified")
	}
}

func TestRegisterDuplicate(t *testing.T) {

	// Arrange
	acc := registerAccount(t)
	payload := map[string]string{
		"email":     acc.Email,
		"password":  acc.Password,
		"full_name": acc.FullName,
	}

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/v1/account/register", payload, "")

	// Assert
	if status != http.StatusConflict {
		t.Fatalf("expected conflict for duplicate email, got status=%d", status)
	}
}
