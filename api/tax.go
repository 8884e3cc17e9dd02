package api

import (
	"context"
	"fmt"
	"net/url"
)

type TaxRequest struct {
	Address TaxAddress `json:"address,omitempty"`
	Rate    TaxRate    `json:"rate,omitempty"`
	Enabled *bool      `json:"enabled,omitempty"`
}

type TaxService interface {
	Create(ctx context.Context, merchantCode string, req TaxRequest, token string) (*Tax, error)
	GetAll(ctx context.Context, merchantCode, token string) ([]Tax, error)
	Update(ctx context.Context, merchantCode, taxID string, req TaxRequest, token string) (*Tax, error)
	Delete(ctx context.Context, merchantCode, taxID, token string) error
}

type taxService struct {
	client *Client
}

func NewTaxService(client *Client) TaxService {
	return &taxService{client: client}
}

func (s *taxService) Create(ctx context.Context, merchantCode string, req TaxRequest, token string) (*Tax, error) {
	path := fmt.Sprintf("/tax/%s/create", url.PathEscape(merchantCode))
	var out Tax
	if err := s.client.post(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *taxService) GetAll(ctx context.Context, merchantCode, token string) ([]Tax, error) {
	path := fmt.Sprintf("/tax/%s/all", url.PathEscape(merchantCode))
	out := []Tax{}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *taxService) Update(ctx context.Context, merchantCode, taxID string, req TaxRequest, token string) (*Tax, error) {
	path := fmt.Sprintf("/tax/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(taxID))
	var out Tax
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *taxService) Delete(ctx context.Context, merchantCode, taxID, token string) error {
	path := fmt.Sprintf("/tax/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(taxID))
	return s.client.delete(ctx, path, token, nil)
}
