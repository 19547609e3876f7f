package auth

import (
	"time"

	"github.com/mvoronin/userhub/internal/domain/model"
)

// TokenStrategy issues and validates bearer tokens for authenticated users.
type TokenStrategy interface {
	IssueToken(identity model.Identity) (string, error)
	ParseToken(token string) (model.Identity, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL      time.Duration
	Issuer   string
	Audience string
}
