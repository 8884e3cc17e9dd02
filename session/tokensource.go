package session

import (
	"context"

	"golang.org/x/oauth2"

	clienterrors "github.com/sellerhq/seller-console/internal/errors"
)

// TokenSource adapts the controller to the standard oauth2.TokenSource
// shape so generic HTTP plumbing (oauth2.NewClient, per-request transports)
// can draw tokens from the session. A stale token triggers one refresh
// attempt before giving up.
func (c *Controller) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &controllerTokenSource{ctx: ctx, c: c}
}

type controllerTokenSource struct {
	ctx context.Context
	c   *Controller
}

var _ oauth2.TokenSource = (*controllerTokenSource)(nil)

func (ts *controllerTokenSource) Token() (*oauth2.Token, error) {
	token := ts.c.AccessToken()
	if token == "" {
		return nil, clienterrors.ErrLoggedOut
	}

	if !ts.c.IsTokenValid(token) {
		if ts.c.RefreshToken() == "" {
			return nil, clienterrors.ErrNoRefreshToken
		}
		if !ts.c.RefreshUserToken(ts.ctx) {
			return nil, clienterrors.ErrTokenExpired
		}
		token = ts.c.AccessToken()
		if token == "" || !ts.c.IsTokenValid(token) {
			return nil, clienterrors.ErrTokenExpired
		}
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, clienterrors.ErrInvalidToken
	}

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		Expiry:      claims.ExpiresAt,
	}, nil
}
