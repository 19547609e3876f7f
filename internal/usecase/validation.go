package usecase

import (
	"net/mail"
	"strings"
)

// ValidEmail checks address shape before it reaches the credential store.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts display names; require a bare address.
	return addr.Address == email && strings.Contains(email, "@")
}
