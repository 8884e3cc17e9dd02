package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims is the derived, read-only view of an access token. It is never
// persisted; it is recomputed on demand by decoding the token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// DecodeClaims extracts claims without verifying the signature. The server
// is the authority on token validity; the client only needs the expiry
// instant for gating and scheduling.
func DecodeClaims(rawToken string) (*Claims, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeClaims] parse token")
	}

	claims := &Claims{}

	if sub, err := token.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iat, err := token.Claims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("[DecodeClaims] token has no expiry claim")
	}
	claims.ExpiresAt = exp.Time

	return claims, nil
}

// IsTokenValid reports whether the token decodes cleanly and its expiry is
// after now. It never returns an error; any decode failure means invalid.
// Pure, so it is usable both for gating calls and for scheduling refreshes.
func IsTokenValid(rawToken string, now time.Time) bool {
	claims, err := DecodeClaims(rawToken)
	if err != nil {
		return false
	}
	return claims.ExpiresAt.After(now)
}
