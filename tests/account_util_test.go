package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type loginData struct {
	AccessToken string `json:"access_token"`
}

func login(t *testing.T, email, password string) loginData {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/account/login", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("login failed: status=%d message=%q", status, errEnv.Message)
	}

	var data loginData
	decodeSuccess(t, body, &data)

	return data
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

type testAccount struct {
	Email    string
	Password string
	FullName string
}

func registerAccount(t *testing.T) testAccount {
	t.Helper()

	acc := testAccount{
		Email:    uniqueEmail("real-account"),
		Password: "Secret123!",
		FullName: "Test Account",
	}

	payload := map[string]string{
		"email":     acc.Email,
		"password":  acc.Password,
		"full_name": acc.FullName,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/account/register", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("register account failed: status=%d message=%q", status, errEnv.Message)
	}

	return acc
}
