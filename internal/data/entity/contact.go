package entity

import (
	"strconv"
	"strings"
)

type ContactKind int

const (
	ContactEmail ContactKind = iota
	ContactPhone
)

func (k ContactKind) String() string {
	if k == ContactPhone {
		return "phone"
	}
	return "email"
}

// Contact is the lookup key for an identity: an email address or a phone number.
type Contact struct {
	Kind  ContactKind
	Value string
}

// ParseContact classifies raw input. Anything that parses as a number is a
// phone number, everything else is an email.
func ParseContact(raw string) Contact {
	value := strings.TrimSpace(raw)
	if value != "" {
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return Contact{Kind: ContactPhone, Value: value}
		}
	}
	return Contact{Kind: ContactEmail, Value: value}
}

func EmailContact(email string) Contact {
	return Contact{Kind: ContactEmail, Value: email}
}

func PhoneContact(phone string) Contact {
	return Contact{Kind: ContactPhone, Value: phone}
}

func (c Contact) IsPhone() bool {
	return c.Kind == ContactPhone
}

func (c Contact) String() string {
	return c.Value
}
