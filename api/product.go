package api

import (
	"context"
	"fmt"
	"net/url"
)

type ProductRequest struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ProductService covers the catalogue endpoints. Reads are public per
// merchant code; writes require the bearer token.
type ProductService interface {
	Add(ctx context.Context, merchantCode string, req ProductRequest, token string) (*Product, error)
	GetAll(ctx context.Context, merchantCode string, page int) (*ProductPage, error)
	Get(ctx context.Context, merchantCode, slug string) (*Product, error)
	Update(ctx context.Context, merchantCode, productID string, req ProductRequest, token string) (*Product, error)
	Delete(ctx context.Context, merchantCode, productID, token string) error
}

type productService struct {
	client *Client
}

func NewProductService(client *Client) ProductService {
	return &productService{client: client}
}

func (s *productService) Add(ctx context.Context, merchantCode string, req ProductRequest, token string) (*Product, error) {
	path := fmt.Sprintf("/product/%s/create", url.PathEscape(merchantCode))
	var out Product
	if err := s.client.post(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *productService) GetAll(ctx context.Context, merchantCode string, page int) (*ProductPage, error) {
	path := fmt.Sprintf("/product/%s/all?page=%d", url.PathEscape(merchantCode), page)
	out := ProductPage{Products: []Product{}}
	if err := s.client.get(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *productService) Get(ctx context.Context, merchantCode, slug string) (*Product, error) {
	path := fmt.Sprintf("/product/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(slug))
	var out Product
	if err := s.client.get(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *productService) Update(ctx context.Context, merchantCode, productID string, req ProductRequest, token string) (*Product, error) {
	path := fmt.Sprintf("/product/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(productID))
	var out Product
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *productService) Delete(ctx context.Context, merchantCode, productID, token string) error {
	path := fmt.Sprintf("/product/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(productID))
	return s.client.delete(ctx, path, token, nil)
}
