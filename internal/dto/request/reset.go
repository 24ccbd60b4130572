package request

// ForgotPasswordRequest starts a reset. Username is an email or a phone number.
type ForgotPasswordRequest struct {
	Username string `json:"username" validate:"required"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required"`
}

type ResetPasswordRequest struct {
	OTP      string `json:"otp" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
