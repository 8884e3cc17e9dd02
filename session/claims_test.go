package session_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/sellerhq/seller-console/session"
)

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "user-1",
		"iat": exp.Add(-time.Hour).Unix(),
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	claims, err := session.DecodeClaims(makeToken(t, exp))
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.True(t, claims.ExpiresAt.Equal(exp))
}

func TestDecodeClaimsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := session.DecodeClaims(raw)
		require.Error(t, err, "raw=%q", raw)
	}
}

func TestDecodeClaimsRequiresExpiry(t *testing.T) {
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{"sub": "user-1"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = session.DecodeClaims(signed)
	require.Error(t, err)
}

func TestIsTokenValid(t *testing.T) {
	now := time.Now()

	t.Run("undecodable is invalid", func(t *testing.T) {
		require.False(t, session.IsTokenValid("garbage", now))
		require.False(t, session.IsTokenValid("", now))
	})

	t.Run("expired is invalid", func(t *testing.T) {
		require.False(t, session.IsTokenValid(makeToken(t, now.Add(-time.Minute)), now))
	})

	t.Run("future expiry is valid", func(t *testing.T) {
		require.True(t, session.IsTokenValid(makeToken(t, now.Add(time.Minute)), now))
	})

	t.Run("result tracks the supplied clock", func(t *testing.T) {
		tok := makeToken(t, now.Add(30*time.Second))
		require.True(t, session.IsTokenValid(tok, now))
		require.False(t, session.IsTokenValid(tok, now.Add(time.Minute)))
	})
}
