// Package session owns the authenticated state of the console: who is
// logged in, with which merchant, using which token. The Controller is the
// single writer of that state; everything else reads it through accessors.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/notify"
)

const (
	defaultRenewalInterval = 12 * time.Minute
	defaultExpiryLeeway    = 60 * time.Second
	defaultRequestTimeout  = 30 * time.Second
)

// Deps holds the controller's collaborators.
type Deps struct {
	Users     api.UserService     // Remote auth/account endpoints
	Merchants api.MerchantService // Remote store profile endpoints
	Store     Store               // Durable session storage
	Notifier  notify.Notifier     // User-visible notices
}

// Controller is the session state machine: LoggedOut -> LoggedIn ->
// Expiring -> refreshed or torn down. LoggedIn with a nil merchant is a
// valid sub-state (a seller who has not created a store yet).
//
// Remote failures never escape as errors. Every call site logs and leaves
// state either stale (reads) or cleared (refresh), so consumers observe
// failure only through the state itself.
type Controller struct {
	deps            Deps
	logger          zerolog.Logger
	nowFn           func() time.Time
	renewalInterval time.Duration
	expiryLeeway    time.Duration
	requestTimeout  time.Duration

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *api.User
	merchant     *api.Merchant
	inflight     *refreshCall

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// refreshCall coalesces concurrent refresh attempts onto one remote call.
type refreshCall struct {
	done chan struct{}
	ok   bool
}

// ControllerOption defines a function type to modify the Controller instance.
type ControllerOption func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithNowFunc sets the clock (primarily for testing).
func WithNowFunc(nowFn func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.nowFn = nowFn
	}
}

// WithRenewalInterval overrides how often the background renewal fires.
func WithRenewalInterval(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.renewalInterval = d
	}
}

// WithExpiryLeeway overrides the proactive-refresh window before expiry.
func WithExpiryLeeway(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.expiryLeeway = d
	}
}

// WithRequestTimeout bounds the remote calls the controller makes on its
// own initiative (background renewal).
func WithRequestTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.requestTimeout = d
	}
}

// NewController rehydrates session state from the store and returns the
// controller. Nothing is fetched yet; call Start to run the proactive
// expiry check, profile fetches and the renewal loop.
func NewController(deps Deps, options ...ControllerOption) (*Controller, error) {
	if deps.Users == nil {
		return nil, errors.New("[NewController] Users service is required")
	}
	if deps.Merchants == nil {
		return nil, errors.New("[NewController] Merchants service is required")
	}
	if deps.Store == nil {
		return nil, errors.New("[NewController] Store is required")
	}
	if deps.Notifier == nil {
		return nil, errors.New("[NewController] Notifier is required")
	}

	c := &Controller{
		deps:            deps,
		logger:          zerolog.Nop(),
		nowFn:           time.Now,
		renewalInterval: defaultRenewalInterval,
		expiryLeeway:    defaultExpiryLeeway,
		requestTimeout:  defaultRequestTimeout,
		done:            make(chan struct{}),
	}
	for _, opt := range options {
		opt(c)
	}

	c.rehydrate()
	return c, nil
}

// rehydrate loads whatever the store has; missing keys stay absent.
func (c *Controller) rehydrate() {
	var accessToken, refreshToken string
	if _, err := c.deps.Store.Get(KeyAccessToken, &accessToken); err != nil {
		c.logger.Error().Err(err).Msg("rehydrate access token")
	}
	if _, err := c.deps.Store.Get(KeyRefreshToken, &refreshToken); err != nil {
		c.logger.Error().Err(err).Msg("rehydrate refresh token")
	}

	var user api.User
	var merchant api.Merchant
	userOK, err := c.deps.Store.Get(KeyUser, &user)
	if err != nil {
		c.logger.Error().Err(err).Msg("rehydrate user")
	}
	merchantOK, err := c.deps.Store.Get(KeyMerchant, &merchant)
	if err != nil {
		c.logger.Error().Err(err).Msg("rehydrate merchant")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
	if userOK {
		c.user = &user
	}
	if merchantOK {
		c.merchant = &merchant
	}
}

// Start runs the proactive expiry check, fetches any missing profiles and
// launches the background renewal loop. The loop stops when ctx is
// cancelled or Close is called.
func (c *Controller) Start(ctx context.Context) {
	c.checkExpiry(ctx)
	c.EnsureProfiles(ctx)

	c.wg.Add(1)
	go c.renewLoop(ctx)
}

// Close tears down the renewal loop deterministically.
func (c *Controller) Close() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

// renewLoop fires every renewal interval and attempts a refresh
// unconditionally; RefreshUserToken's own guards handle the no-token case.
func (c *Controller) renewLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.renewalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
			c.RefreshUserToken(callCtx)
			cancel()
		}
	}
}

// AccessToken returns the current access token, empty when logged out.
func (c *Controller) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// RefreshToken returns the current refresh token.
func (c *Controller) RefreshToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshToken
}

// User returns the current user profile, nil when not fetched.
func (c *Controller) User() *api.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Merchant returns the current merchant profile, nil when the seller has
// no store yet or it has not been fetched.
func (c *Controller) Merchant() *api.Merchant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.merchant
}

// IsLoggedIn reports whether an access token is present at all.
func (c *Controller) IsLoggedIn() bool {
	return c.AccessToken() != ""
}

// IsTokenValid reports whether tok decodes cleanly and has not expired
// against the controller's clock. Never panics and never returns an error.
func (c *Controller) IsTokenValid(tok string) bool {
	return IsTokenValid(tok, c.nowFn())
}

// SetSession stores a fresh token pair (the login transition), then runs
// the proactive expiry check and fetches any missing profiles.
func (c *Controller) SetSession(ctx context.Context, accessToken, refreshToken string) {
	c.mu.Lock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
	c.mu.Unlock()
	c.persist(KeyAccessToken, accessToken)
	c.persist(KeyRefreshToken, refreshToken)

	c.checkExpiry(ctx)
	c.EnsureProfiles(ctx)
}

// SetUser replaces the stored user profile.
func (c *Controller) SetUser(user *api.User) {
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	if user == nil {
		c.unpersist(KeyUser)
		return
	}
	c.persist(KeyUser, user)
}

// SetMerchant replaces the stored merchant profile.
func (c *Controller) SetMerchant(merchant *api.Merchant) {
	c.mu.Lock()
	c.merchant = merchant
	c.mu.Unlock()
	if merchant == nil {
		c.unpersist(KeyMerchant)
		return
	}
	c.persist(KeyMerchant, merchant)
}

// Logout clears the whole session and surfaces one notice. Calling it when
// already logged out is a no-op, which also coalesces rapid repeated
// logouts into a single visible message.
func (c *Controller) Logout() {
	c.mu.Lock()
	if c.accessToken == "" {
		c.mu.Unlock()
		return
	}
	c.accessToken = ""
	c.refreshToken = ""
	c.user = nil
	c.merchant = nil
	c.mu.Unlock()

	c.deps.Notifier.Info(notify.LogoutID, "You are logged out.")
	c.unpersist(KeyUser)
	c.unpersist(KeyAccessToken)
	c.unpersist(KeyRefreshToken)
	c.unpersist(KeyMerchant)
}

// FetchUser retrieves the current user profile when a valid token is
// present. Failures leave the previous profile untouched.
func (c *Controller) FetchUser(ctx context.Context) {
	token := c.AccessToken()
	if token == "" {
		return
	}
	if !c.IsTokenValid(token) {
		return
	}

	user, err := c.deps.Users.AuthUser(ctx, token)
	if err != nil {
		c.logger.Error().Err(err).Msg("fetch user failed")
		return
	}
	c.SetUser(user)
}

// FetchMerchant retrieves the merchant profile when a valid token is
// present. Failures leave the previous profile untouched.
func (c *Controller) FetchMerchant(ctx context.Context) {
	token := c.AccessToken()
	if token == "" {
		return
	}
	if !c.IsTokenValid(token) {
		return
	}

	merchant, err := c.deps.Merchants.Get(ctx, token)
	if err != nil {
		c.logger.Error().Err(err).Msg("fetch merchant failed")
		return
	}
	c.SetMerchant(merchant)
}

// EnsureProfiles fetches user and merchant unless both are already
// present. Safe to call repeatedly; the presence check keeps it from
// looping.
func (c *Controller) EnsureProfiles(ctx context.Context) {
	c.mu.RLock()
	haveBoth := c.user != nil && c.merchant != nil
	c.mu.RUnlock()
	if haveBoth {
		return
	}
	c.FetchUser(ctx)
	c.FetchMerchant(ctx)
}

// RefreshUserToken exchanges the refresh token for a new access token and
// re-fetches the user profile. It reports success but never returns an
// error. On remote failure the session is hard-reset: user and access
// token are cleared while the refresh token is kept so a later attempt can
// still recover. Concurrent callers (renewal tick and proactive check
// firing together) coalesce onto a single in-flight exchange.
func (c *Controller) RefreshUserToken(ctx context.Context) bool {
	c.mu.Lock()
	if c.inflight != nil {
		call := c.inflight
		c.mu.Unlock()
		<-call.done
		return call.ok
	}
	call := &refreshCall{done: make(chan struct{})}
	c.inflight = call
	refreshToken := c.refreshToken
	c.mu.Unlock()

	call.ok = c.doRefresh(ctx, refreshToken)

	c.mu.Lock()
	c.inflight = nil
	c.mu.Unlock()
	close(call.done)

	return call.ok
}

func (c *Controller) doRefresh(ctx context.Context, refreshToken string) bool {
	if refreshToken == "" {
		c.logger.Debug().Msg("refresh skipped: no refresh token")
		return false
	}

	resp, err := c.deps.Users.RefreshToken(ctx, refreshToken)
	if err != nil {
		c.logger.Error().Err(err).Msg("token refresh failed, resetting session")
		c.SetUser(nil)
		c.mu.Lock()
		c.accessToken = ""
		c.mu.Unlock()
		c.unpersist(KeyAccessToken)
		return false
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()
	c.persist(KeyAccessToken, resp.AccessToken)

	c.FetchUser(ctx)
	return true
}

// checkExpiry refreshes immediately when the access token is inside the
// expiry leeway (or does not decode). A failed attempt routes through
// Logout for a clean teardown; since a failed exchange already dropped the
// access token, Logout's idempotency guard usually makes that a no-op and
// the refresh token survives for the next attempt.
func (c *Controller) checkExpiry(ctx context.Context) {
	token := c.AccessToken()
	if token == "" {
		return
	}

	claims, err := DecodeClaims(token)
	if err == nil && claims.ExpiresAt.Sub(c.nowFn()) >= c.expiryLeeway {
		return
	}

	if !c.RefreshUserToken(ctx) {
		c.Logout()
	}
}

func (c *Controller) persist(key string, value any) {
	if err := c.deps.Store.Set(key, value); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("persist session state")
	}
}

func (c *Controller) unpersist(key string) {
	if err := c.deps.Store.Delete(key); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("clear session state")
	}
}
