package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/api/apifakes"
	clienterrors "github.com/sellerhq/seller-console/internal/errors"
	"github.com/sellerhq/seller-console/notify/notifyfakes"
	"github.com/sellerhq/seller-console/session"
	"github.com/sellerhq/seller-console/session/storefakes"
)

// testFixture holds all controller dependencies.
type testFixture struct {
	users     *apifakes.FakeUserService
	merchants *apifakes.FakeMerchantService
	store     *storefakes.FakeStore
	notifier  *notifyfakes.FakeNotifier
	now       time.Time
}

func newFixture() *testFixture {
	return &testFixture{
		users:     apifakes.NewFakeUserService(),
		merchants: apifakes.NewFakeMerchantService(),
		store:     storefakes.NewFakeStore(),
		notifier:  notifyfakes.NewFakeNotifier(),
		now:       time.Now(),
	}
}

func (f *testFixture) build(t *testing.T, options ...session.ControllerOption) *session.Controller {
	t.Helper()

	opts := append([]session.ControllerOption{
		session.WithNowFunc(func() time.Time { return f.now }),
		session.WithRenewalInterval(time.Hour), // keep the background loop quiet unless a test wants it
	}, options...)

	controller, err := session.NewController(session.Deps{
		Users:     f.users,
		Merchants: f.merchants,
		Store:     f.store,
		Notifier:  f.notifier,
	}, opts...)
	require.NoError(t, err)
	return controller
}

// seedSession writes session state straight into the store so the next
// controller rehydrates it.
func (f *testFixture) seedSession(t *testing.T, accessToken, refreshToken string, user *api.User, merchant *api.Merchant) {
	t.Helper()
	if accessToken != "" {
		require.NoError(t, f.store.Set(session.KeyAccessToken, accessToken))
	}
	if refreshToken != "" {
		require.NoError(t, f.store.Set(session.KeyRefreshToken, refreshToken))
	}
	if user != nil {
		require.NoError(t, f.store.Set(session.KeyUser, user))
	}
	if merchant != nil {
		require.NoError(t, f.store.Set(session.KeyMerchant, merchant))
	}
}

func TestNewControllerValidatesDeps(t *testing.T) {
	f := newFixture()
	_, err := session.NewController(session.Deps{
		Merchants: f.merchants,
		Store:     f.store,
		Notifier:  f.notifier,
	})
	require.Error(t, err)
}

func TestRehydrateFromStore(t *testing.T) {
	f := newFixture()
	tok := makeToken(t, f.now.Add(time.Hour))
	f.seedSession(t, tok, "refresh-1",
		&api.User{ID: "u1", Username: "ada"},
		&api.Merchant{ID: "m1", MerchantCode: "adas-shop"})

	c := f.build(t)

	require.Equal(t, tok, c.AccessToken())
	require.Equal(t, "refresh-1", c.RefreshToken())
	require.Equal(t, "ada", c.User().Username)
	require.Equal(t, "adas-shop", c.Merchant().MerchantCode)
	require.True(t, c.IsLoggedIn())
}

func TestRehydrateMissingKeysMeansLoggedOut(t *testing.T) {
	f := newFixture()
	c := f.build(t)

	require.Empty(t, c.AccessToken())
	require.Nil(t, c.User())
	require.Nil(t, c.Merchant())
	require.False(t, c.IsLoggedIn())
}

func TestLogoutWhenLoggedOutIsNoOp(t *testing.T) {
	f := newFixture()
	c := f.build(t)

	c.Logout()
	c.Logout()

	require.Empty(t, f.notifier.Notices())
}

func TestLogoutClearsSessionAndNotifiesOnce(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(time.Hour)), "refresh-1",
		&api.User{ID: "u1"}, &api.Merchant{ID: "m1"})
	c := f.build(t)

	c.Logout()
	c.Logout()

	require.Empty(t, c.AccessToken())
	require.Empty(t, c.RefreshToken())
	require.Nil(t, c.User())
	require.Nil(t, c.Merchant())

	require.Len(t, f.notifier.WithID("logout-id"), 1)

	require.False(t, f.store.Has(session.KeyAccessToken))
	require.False(t, f.store.Has(session.KeyRefreshToken))
	require.False(t, f.store.Has(session.KeyUser))
	require.False(t, f.store.Has(session.KeyMerchant))
}

func TestSetSessionFetchesProfilesWithNewToken(t *testing.T) {
	f := newFixture()
	tok := makeToken(t, f.now.Add(time.Hour))
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return &api.User{ID: "u1", Username: "ada"}, nil
	}
	f.merchants.GetFn = func(ctx context.Context, token string) (*api.Merchant, error) {
		return &api.Merchant{ID: "m1", MerchantCode: "adas-shop"}, nil
	}
	c := f.build(t)

	c.SetSession(context.Background(), tok, "refresh-1")

	require.Equal(t, tok, c.AccessToken())
	require.Equal(t, "refresh-1", c.RefreshToken())
	require.Equal(t, []string{tok}, f.users.AuthUserTokens)
	require.Equal(t, []string{tok}, f.merchants.GetTokens)
	require.Equal(t, "ada", c.User().Username)
	require.Equal(t, "adas-shop", c.Merchant().MerchantCode)

	require.True(t, f.store.Has(session.KeyAccessToken))
	require.True(t, f.store.Has(session.KeyUser))
	require.True(t, f.store.Has(session.KeyMerchant))
}

func TestFetchUserSkipsWithoutToken(t *testing.T) {
	f := newFixture()
	c := f.build(t)

	c.FetchUser(context.Background())
	require.Zero(t, f.users.AuthUserCalls)
}

func TestFetchUserSkipsExpiredToken(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(-time.Minute)), "", nil, nil)
	c := f.build(t)

	c.FetchUser(context.Background())
	require.Zero(t, f.users.AuthUserCalls)
}

func TestFetchUserFailureKeepsPriorProfile(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(time.Hour)), "", &api.User{ID: "u1", Username: "ada"}, nil)
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return nil, clienterrors.ErrServerDown
	}
	c := f.build(t)

	c.FetchUser(context.Background())

	require.NotNil(t, c.User())
	require.Equal(t, "ada", c.User().Username)
}

func TestEnsureProfilesSkipsWhenBothPresent(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(time.Hour)), "refresh-1",
		&api.User{ID: "u1"}, &api.Merchant{ID: "m1"})
	c := f.build(t)

	c.EnsureProfiles(context.Background())

	require.Zero(t, f.users.AuthUserCalls)
	require.Zero(t, f.merchants.GetCalls)
}

func TestRefreshFailureHardResetsButKeepsRefreshToken(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(time.Hour)), "refresh-1", &api.User{ID: "u1"}, nil)
	f.users.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		return nil, clienterrors.ErrServerDown
	}
	c := f.build(t)

	ok := c.RefreshUserToken(context.Background())

	require.False(t, ok)
	require.Nil(t, c.User())
	require.Empty(t, c.AccessToken())
	require.Equal(t, "refresh-1", c.RefreshToken())

	require.False(t, f.store.Has(session.KeyAccessToken))
	require.False(t, f.store.Has(session.KeyUser))
	require.True(t, f.store.Has(session.KeyRefreshToken))
}

func TestRefreshSuccessStoresTokenAndRefetchesUser(t *testing.T) {
	f := newFixture()
	f.seedSession(t, "", "refresh-1", nil, nil)
	fresh := makeToken(t, f.now.Add(time.Hour))
	f.users.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		require.Equal(t, "refresh-1", refreshToken)
		return &api.TokenResponse{AccessToken: fresh}, nil
	}
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return &api.User{ID: "u1"}, nil
	}
	c := f.build(t)

	ok := c.RefreshUserToken(context.Background())

	require.True(t, ok)
	require.Equal(t, fresh, c.AccessToken())
	require.Equal(t, []string{fresh}, f.users.AuthUserTokens)
	require.NotNil(t, c.User())
}

func TestRefreshWithoutRefreshTokenIsGuarded(t *testing.T) {
	f := newFixture()
	c := f.build(t)

	require.False(t, c.RefreshUserToken(context.Background()))
	require.Zero(t, f.users.RefreshTokenCalls)
}

func TestStartRefreshesNearExpiryTokenExactlyOnce(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(30*time.Second)), "refresh-1", nil, nil)
	fresh := makeToken(t, f.now.Add(time.Hour))
	f.users.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		return &api.TokenResponse{AccessToken: fresh}, nil
	}
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return &api.User{ID: "u1"}, nil
	}
	c := f.build(t)

	c.Start(context.Background())
	defer c.Close()

	require.Equal(t, 1, f.users.RefreshTokenCalls)
	require.Equal(t, fresh, c.AccessToken())
}

func TestStartLeavesFreshTokenAlone(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(time.Hour)), "refresh-1",
		&api.User{ID: "u1"}, &api.Merchant{ID: "m1"})
	c := f.build(t)

	c.Start(context.Background())
	defer c.Close()

	require.Zero(t, f.users.RefreshTokenCalls)
}

func TestProactiveRefreshFailureWithoutRefreshTokenLogsOut(t *testing.T) {
	f := newFixture()
	f.seedSession(t, makeToken(t, f.now.Add(30*time.Second)), "", &api.User{ID: "u1"}, nil)
	c := f.build(t)

	c.Start(context.Background())
	defer c.Close()

	require.Empty(t, c.AccessToken())
	require.Nil(t, c.User())
	require.Len(t, f.notifier.WithID("logout-id"), 1)
}

func TestConcurrentRefreshesCoalesce(t *testing.T) {
	f := newFixture()
	f.seedSession(t, "", "refresh-1", nil, nil)
	release := make(chan struct{})
	fresh := makeToken(t, f.now.Add(time.Hour))
	f.users.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		<-release
		return &api.TokenResponse{AccessToken: fresh}, nil
	}
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return &api.User{ID: "u1"}, nil
	}
	c := f.build(t)

	results := make(chan bool, 2)
	go func() {
		results <- c.RefreshUserToken(context.Background())
	}()

	// Wait for the first refresh to be in flight, then pile a second
	// caller on top of it before releasing the remote call.
	require.Eventually(t, func() bool {
		return f.users.RefreshCalls() == 1
	}, time.Second, 5*time.Millisecond)
	go func() {
		results <- c.RefreshUserToken(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)

	require.True(t, <-results)
	require.True(t, <-results)
	require.Equal(t, 1, f.users.RefreshTokenCalls)
}

func TestRenewalLoopFires(t *testing.T) {
	f := newFixture()
	f.seedSession(t, "", "refresh-1", nil, nil)
	fresh := makeToken(t, f.now.Add(time.Hour))
	f.users.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
		return &api.TokenResponse{AccessToken: fresh}, nil
	}
	f.users.AuthUserFn = func(ctx context.Context, token string) (*api.User, error) {
		return &api.User{ID: "u1"}, nil
	}
	c := f.build(t, session.WithRenewalInterval(10*time.Millisecond))

	c.Start(context.Background())
	defer c.Close()

	require.Eventually(t, func() bool {
		return f.users.RefreshCalls() >= 1
	}, time.Second, 5*time.Millisecond)
}
