package api

import (
	"context"
	"fmt"
	"net/url"
)

type MerchantRequest struct {
	MerchantName  string `json:"merchantName,omitempty"`
	MerchantEmail string `json:"merchantEmail,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Description   string `json:"description,omitempty"`
	Logo          string `json:"logo,omitempty"`
	Address       string `json:"address,omitempty"`
}

// MerchantService covers the store profile endpoints. Every call is
// authorized; the server resolves the merchant from the bearer token.
type MerchantService interface {
	Create(ctx context.Context, req MerchantRequest, token string) (*Merchant, error)
	Get(ctx context.Context, token string) (*Merchant, error)
	Update(ctx context.Context, merchantID string, req MerchantRequest, token string) (*Merchant, error)
	Delete(ctx context.Context, token string) error
	Sales(ctx context.Context, merchantCode, token string) (*SalesSummary, error)
}

type merchantService struct {
	client *Client
}

func NewMerchantService(client *Client) MerchantService {
	return &merchantService{client: client}
}

func (s *merchantService) Create(ctx context.Context, req MerchantRequest, token string) (*Merchant, error) {
	var out Merchant
	if err := s.client.post(ctx, "/merchant/create", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *merchantService) Get(ctx context.Context, token string) (*Merchant, error) {
	var out Merchant
	if err := s.client.get(ctx, "/merchant", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *merchantService) Update(ctx context.Context, merchantID string, req MerchantRequest, token string) (*Merchant, error) {
	path := fmt.Sprintf("/merchant/%s/update", url.PathEscape(merchantID))
	var out Merchant
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *merchantService) Delete(ctx context.Context, token string) error {
	return s.client.delete(ctx, "/merchant/delete", token, nil)
}

func (s *merchantService) Sales(ctx context.Context, merchantCode, token string) (*SalesSummary, error) {
	path := fmt.Sprintf("/merchant/%s/get/sales", url.PathEscape(merchantCode))
	var out SalesSummary
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
