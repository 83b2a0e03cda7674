// Package security owns the credential and token primitives shared by all
// services: bcrypt password hashing and HMAC-signed access tokens.
package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/microblog/platform/internal/core/domain"
)

// Claims is the claim set carried by an access token.
type Claims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenAuthority mints and verifies self-contained signed tokens. The
// secret and signing method are process-wide configuration, immutable
// after construction.
type TokenAuthority struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenAuthority builds a TokenAuthority. algorithm is one of HS256,
// HS384, HS512 (anything else falls back to HS256). ttl <= 0 falls back
// to one hour.
func NewTokenAuthority(secret, algorithm string, ttl time.Duration) *TokenAuthority {
	method := jwt.SigningMethodHS256
	switch algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenAuthority{secret: []byte(secret), method: method, ttl: ttl}
}

// Mint signs a token for subject with iat = now and exp = now + TTL.
func (a *TokenAuthority) Mint(subject, email string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(a.method, claims).SignedString(a.secret)
}

// Verify checks signature and expiry. Every rejection returns
// domain.ErrInvalidToken regardless of which check failed, so callers
// cannot be used as an oracle for the failure reason.
func (a *TokenAuthority) Verify(raw string) (*Claims, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != a.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	out := &Claims{Subject: claims.Subject, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// TTL returns the configured token lifetime.
func (a *TokenAuthority) TTL() time.Duration {
	return a.ttl
}
