package entity

import (
	"time"
)

// ResetToken is a one-time password reset code bound to exactly one contact.
// Consuming a token means deleting its row.
type ResetToken struct {
	BaseSimple
	Email       *string   `db:"email"`
	PhoneNumber *string   `db:"phone_number"`
	Token       string    `db:"token"`
	Expires     time.Time `db:"expires"`
}

func NewResetToken(contact Contact, token string, expires time.Time) *ResetToken {
	t := &ResetToken{Token: token, Expires: expires}
	value := contact.Value
	if contact.IsPhone() {
		t.PhoneNumber = &value
	} else {
		t.Email = &value
	}
	return t
}

// Contact returns the contact the token was issued for.
func (t *ResetToken) Contact() (Contact, bool) {
	switch {
	case t.Email != nil && *t.Email != "":
		return EmailContact(*t.Email), true
	case t.PhoneNumber != nil && *t.PhoneNumber != "":
		return PhoneContact(*t.PhoneNumber), true
	default:
		return Contact{}, false
	}
}

func (t *ResetToken) IsExpired(now time.Time) bool {
	return now.After(t.Expires)
}
