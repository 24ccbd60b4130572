package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const digits = "0123456789"

// GenerateOTP creates a numeric one-time code of the given length
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	code, err := gonanoid.Generate(digits, length)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return code, nil
}

// GenerateIdentifier creates the short public identifier shown next to a user
func GenerateIdentifier() (string, error) {
	return gonanoid.Generate(digits, 3)
}

// GenerateReferralLink builds a user's referral link from an 8 digit code
func GenerateReferralLink(appURL string) (string, error) {
	code, err := gonanoid.Generate(digits, 8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/signup?referralCode=%s", appURL, code), nil
}
