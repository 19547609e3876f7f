package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/mvoronin/userhub/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 60 * time.Minute

// Claims is the JWT payload: registered claims plus the user id and role
// so handlers can authorize without a second store lookup.
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// JWTStrategy signs and verifies HS256 tokens. The same symmetric key is
// used on both sides; validity is entirely signature + time window, there
// is no server-side session state.
type JWTStrategy struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTStrategy{
		secret:   []byte(secret),
		ttl:      ttl,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		now:      time.Now,
	}
}

// IssueToken generates a signed token with subject set to the user email
// and expiry at issuance time plus the configured TTL.
func (s *JWTStrategy) IssueToken(identity model.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: identity.UserID,
		Role:   identity.Role.String(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   identity.Email,
			Issuer:    s.issuer,
			Audience:  jwtlib.ClaimStrings{s.audience},
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature, expiry, issuer and audience, and returns
// the embedded identity. Every failure mode collapses to ErrInvalidToken.
func (s *JWTStrategy) ParseToken(token string) (model.Identity, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if t.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwtlib.WithIssuer(s.issuer),
		jwtlib.WithAudience(s.audience),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{UserID: claims.UserID, Email: claims.Subject, Role: role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt-hs256"
}
