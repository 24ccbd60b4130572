package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	IdentityID uuid.UUID  `db:"identity_id"`
	Role       Role       `db:"role"`
	Token      uuid.UUID  `db:"token"`
	ExpiresAt  time.Time  `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
}
