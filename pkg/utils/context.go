package utils

import (
	"context"

	"project-portal/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const (
	IdentityIDKey contextKey = "identity_id"
	RoleKey       contextKey = "role"
	TokenKey      contextKey = "token"
)

func GetIdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IdentityIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}

func SetIdentityContext(ctx context.Context, identityID uuid.UUID, role entity.Role) context.Context {
	ctx = context.WithValue(ctx, IdentityIDKey, identityID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenFromContext returns the session token set by the auth middleware
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
