package inbound

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type RegisterResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	IsVerified bool   `json:"is_verified"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. Request a verification code to activate your account."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "A password reset code has been sent to your email."
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type VerifySendRequest struct {
	Email string `json:"email"`
}

type VerifySendResponse struct{}

func (VerifySendResponse) Message() string {
	return "A verification code has been sent to your email."
}

type VerifyConfirmRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	IsVerified bool   `json:"is_verified"`
}
