// Package apifakes provides configurable in-memory implementations of the
// remote services for tests. Each method delegates to an optional function
// field and counts its calls.
package apifakes

import (
	"context"
	"sync"

	"github.com/sellerhq/seller-console/api"
	clienterrors "github.com/sellerhq/seller-console/internal/errors"
)

var _ api.UserService = (*FakeUserService)(nil)

type FakeUserService struct {
	mu sync.Mutex

	LoginFn        func(ctx context.Context, credentials api.Credentials) (*api.AuthResponse, error)
	RefreshTokenFn func(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	AuthUserFn     func(ctx context.Context, token string) (*api.User, error)

	LoginCalls        int
	RefreshTokenCalls int
	AuthUserCalls     int

	// AuthUserTokens records the bearer token of every AuthUser call.
	AuthUserTokens []string
}

func NewFakeUserService() *FakeUserService {
	return &FakeUserService{}
}

func (f *FakeUserService) Login(ctx context.Context, credentials api.Credentials) (*api.AuthResponse, error) {
	f.mu.Lock()
	f.LoginCalls++
	fn := f.LoginFn
	f.mu.Unlock()
	if fn == nil {
		return nil, clienterrors.ErrUnsupported
	}
	return fn(ctx, credentials)
}

func (f *FakeUserService) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeUserService) RefreshToken(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	f.mu.Lock()
	f.RefreshTokenCalls++
	fn := f.RefreshTokenFn
	f.mu.Unlock()
	if fn == nil {
		return nil, clienterrors.ErrUnsupported
	}
	return fn(ctx, refreshToken)
}

// RefreshCalls reads the RefreshToken call count under the lock so tests
// can poll it while the controller refreshes in the background.
func (f *FakeUserService) RefreshCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.RefreshTokenCalls
}

func (f *FakeUserService) AuthUser(ctx context.Context, token string) (*api.User, error) {
	f.mu.Lock()
	f.AuthUserCalls++
	f.AuthUserTokens = append(f.AuthUserTokens, token)
	fn := f.AuthUserFn
	f.mu.Unlock()
	if fn == nil {
		return nil, clienterrors.ErrUnsupported
	}
	return fn(ctx, token)
}

func (f *FakeUserService) UpdateAccount(ctx context.Context, req api.UpdateAccountRequest, token string) (*api.User, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeUserService) DeleteAccount(ctx context.Context, token string) error {
	return clienterrors.ErrUnsupported
}

func (f *FakeUserService) ForgotPassword(ctx context.Context, email string) (*api.MessageResponse, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeUserService) ResetPassword(ctx context.Context, userID, resetToken, password string) (*api.MessageResponse, error) {
	return nil, clienterrors.ErrUnsupported
}

var _ api.ProductService = (*FakeProductService)(nil)

type FakeProductService struct {
	mu sync.Mutex

	GetAllFn func(ctx context.Context, merchantCode string, page int) (*api.ProductPage, error)

	GetAllCalls int
}

func NewFakeProductService() *FakeProductService {
	return &FakeProductService{}
}

func (f *FakeProductService) Add(ctx context.Context, merchantCode string, req api.ProductRequest, token string) (*api.Product, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeProductService) GetAll(ctx context.Context, merchantCode string, page int) (*api.ProductPage, error) {
	f.mu.Lock()
	f.GetAllCalls++
	fn := f.GetAllFn
	f.mu.Unlock()
	if fn == nil {
		return nil, clienterrors.ErrUnsupported
	}
	return fn(ctx, merchantCode, page)
}

func (f *FakeProductService) Get(ctx context.Context, merchantCode, slug string) (*api.Product, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeProductService) Update(ctx context.Context, merchantCode, productID string, req api.ProductRequest, token string) (*api.Product, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeProductService) Delete(ctx context.Context, merchantCode, productID, token string) error {
	return clienterrors.ErrUnsupported
}

var _ api.MerchantService = (*FakeMerchantService)(nil)

type FakeMerchantService struct {
	mu sync.Mutex

	GetFn func(ctx context.Context, token string) (*api.Merchant, error)

	GetCalls int

	// GetTokens records the bearer token of every Get call.
	GetTokens []string
}

func NewFakeMerchantService() *FakeMerchantService {
	return &FakeMerchantService{}
}

func (f *FakeMerchantService) Create(ctx context.Context, req api.MerchantRequest, token string) (*api.Merchant, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeMerchantService) Get(ctx context.Context, token string) (*api.Merchant, error) {
	f.mu.Lock()
	f.GetCalls++
	f.GetTokens = append(f.GetTokens, token)
	fn := f.GetFn
	f.mu.Unlock()
	if fn == nil {
		return nil, clienterrors.ErrUnsupported
	}
	return fn(ctx, token)
}

func (f *FakeMerchantService) Update(ctx context.Context, merchantID string, req api.MerchantRequest, token string) (*api.Merchant, error) {
	return nil, clienterrors.ErrUnsupported
}

func (f *FakeMerchantService) Delete(ctx context.Context, token string) error {
	return clienterrors.ErrUnsupported
}

func (f *FakeMerchantService) Sales(ctx context.Context, merchantCode, token string) (*api.SalesSummary, error) {
	return nil, clienterrors.ErrUnsupported
}
