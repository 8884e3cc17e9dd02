package api

import (
	"context"
	"fmt"
	"net/url"
)

type ShippingRequest struct {
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Fee     float64 `json:"fee,omitempty"`
}

type ShippingService interface {
	Create(ctx context.Context, merchantCode string, req ShippingRequest, token string) (*ShippingRate, error)
	GetAll(ctx context.Context, merchantCode, token string) ([]ShippingRate, error)
	Get(ctx context.Context, merchantCode, shippingID, token string) (*ShippingRate, error)
	Update(ctx context.Context, merchantCode, shippingID string, req ShippingRequest, token string) (*ShippingRate, error)
	Delete(ctx context.Context, merchantCode, shippingID, token string) error
}

type shippingService struct {
	client *Client
}

func NewShippingService(client *Client) ShippingService {
	return &shippingService{client: client}
}

func (s *shippingService) Create(ctx context.Context, merchantCode string, req ShippingRequest, token string) (*ShippingRate, error) {
	path := fmt.Sprintf("/shipping/%s/create", url.PathEscape(merchantCode))
	var out ShippingRate
	if err := s.client.post(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *shippingService) GetAll(ctx context.Context, merchantCode, token string) ([]ShippingRate, error) {
	path := fmt.Sprintf("/shipping/%s/all", url.PathEscape(merchantCode))
	out := []ShippingRate{}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *shippingService) Get(ctx context.Context, merchantCode, shippingID, token string) (*ShippingRate, error) {
	path := fmt.Sprintf("/shipping/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(shippingID))
	var out ShippingRate
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *shippingService) Update(ctx context.Context, merchantCode, shippingID string, req ShippingRequest, token string) (*ShippingRate, error) {
	path := fmt.Sprintf("/shipping/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(shippingID))
	var out ShippingRate
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *shippingService) Delete(ctx context.Context, merchantCode, shippingID, token string) error {
	path := fmt.Sprintf("/shipping/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(shippingID))
	return s.client.delete(ctx, path, token, nil)
}
