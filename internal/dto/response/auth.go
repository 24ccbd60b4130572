package response

import (
	"time"

	"project-portal/internal/data/entity"
)

type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Identity  IdentityResponse `json:"identity"`
}

type IdentityResponse struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	PhoneNumber *string     `json:"phone_number,omitempty"`
	Role        entity.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Helper converters
func IdentityToResponse(identity *entity.Identity) IdentityResponse {
	return IdentityResponse{
		ID:          identity.ID.String(),
		FullName:    identity.FullName,
		Email:       identity.Email,
		PhoneNumber: identity.PhoneNumber,
		Role:        identity.Role,
		CreatedAt:   identity.CreatedAt,
	}
}

func AuthToResponse(identity *entity.Identity, session *entity.Session) AuthResponse {
	resp := AuthResponse{Identity: IdentityToResponse(identity)}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

// ForgotPasswordResponse reports where the reset code went. The code itself
// is never echoed back.
type ForgotPasswordResponse struct {
	Channel   string    `json:"channel"`
	ExpiresAt time.Time `json:"expires_at"`
}
