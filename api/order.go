package api

import (
	"context"
	"fmt"
	"net/url"
)

type OrderStatusRequest struct {
	OrderStatus string `json:"orderStatus,omitempty"`
	IsPaid      *bool  `json:"isPaid,omitempty"`
	IsDelivered *bool  `json:"isDelivered,omitempty"`
}

// OrderService is read-mostly: orders are created by the storefront; the
// seller only inspects them and advances their status.
type OrderService interface {
	GetAll(ctx context.Context, merchantCode string, page int, token string) (*OrderPage, error)
	Get(ctx context.Context, merchantCode, orderID, token string) (*Order, error)
	UpdateStatus(ctx context.Context, merchantCode, orderID string, req OrderStatusRequest, token string) (*Order, error)
}

type orderService struct {
	client *Client
}

func NewOrderService(client *Client) OrderService {
	return &orderService{client: client}
}

func (s *orderService) GetAll(ctx context.Context, merchantCode string, page int, token string) (*OrderPage, error) {
	path := fmt.Sprintf("/order/%s/all?page=%d", url.PathEscape(merchantCode), page)
	out := OrderPage{Orders: []Order{}}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *orderService) Get(ctx context.Context, merchantCode, orderID, token string) (*Order, error) {
	path := fmt.Sprintf("/order/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(orderID))
	var out Order
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, merchantCode, orderID string, req OrderStatusRequest, token string) (*Order, error) {
	path := fmt.Sprintf("/order/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(orderID))
	var out Order
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
