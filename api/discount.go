package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

type DiscountRequest struct {
	DiscountCode  string     `json:"discountCode,omitempty"`
	DiscountValue float64    `json:"discountValue,omitempty"`
	Quantity      int        `json:"quantity,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Enabled       *bool      `json:"enabled,omitempty"`
}

type DiscountService interface {
	Create(ctx context.Context, merchantCode string, req DiscountRequest, token string) (*Discount, error)
	GetAll(ctx context.Context, merchantCode, token string) ([]Discount, error)
	Get(ctx context.Context, merchantCode, discountID, token string) (*Discount, error)
	Update(ctx context.Context, merchantCode, discountID string, req DiscountRequest, token string) (*Discount, error)
	Delete(ctx context.Context, merchantCode, discountID, token string) error
}

type discountService struct {
	client *Client
}

func NewDiscountService(client *Client) DiscountService {
	return &discountService{client: client}
}

func (s *discountService) Create(ctx context.Context, merchantCode string, req DiscountRequest, token string) (*Discount, error) {
	path := fmt.Sprintf("/discount/%s/create", url.PathEscape(merchantCode))
	var out Discount
	if err := s.client.post(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *discountService) GetAll(ctx context.Context, merchantCode, token string) ([]Discount, error) {
	path := fmt.Sprintf("/discount/%s/all", url.PathEscape(merchantCode))
	out := []Discount{}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *discountService) Get(ctx context.Context, merchantCode, discountID, token string) (*Discount, error) {
	path := fmt.Sprintf("/discount/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(discountID))
	var out Discount
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *discountService) Update(ctx context.Context, merchantCode, discountID string, req DiscountRequest, token string) (*Discount, error) {
	path := fmt.Sprintf("/discount/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(discountID))
	var out Discount
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *discountService) Delete(ctx context.Context, merchantCode, discountID, token string) error {
	path := fmt.Sprintf("/discount/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(discountID))
	return s.client.delete(ctx, path, token, nil)
}
