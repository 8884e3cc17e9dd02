package api

import (
	"context"
	"fmt"
	"net/url"
)

type CustomerService interface {
	GetAll(ctx context.Context, merchantCode string, page int, token string) (*CustomerPage, error)
	Get(ctx context.Context, merchantCode, username, token string) (*Customer, error)
	Orders(ctx context.Context, merchantCode, username string, page int, token string) (*OrderPage, error)
	Delete(ctx context.Context, merchantCode, customerID, token string) error
}

type customerService struct {
	client *Client
}

func NewCustomerService(client *Client) CustomerService {
	return &customerService{client: client}
}

func (s *customerService) GetAll(ctx context.Context, merchantCode string, page int, token string) (*CustomerPage, error) {
	path := fmt.Sprintf("/customer/%s/all?page=%d", url.PathEscape(merchantCode), page)
	out := CustomerPage{Customers: []Customer{}}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *customerService) Get(ctx context.Context, merchantCode, username, token string) (*Customer, error) {
	path := fmt.Sprintf("/customer/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(username))
	var out Customer
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *customerService) Orders(ctx context.Context, merchantCode, username string, page int, token string) (*OrderPage, error) {
	path := fmt.Sprintf("/customer/%s/orders/%s?page=%d", url.PathEscape(merchantCode), url.PathEscape(username), page)
	out := OrderPage{Orders: []Order{}}
	if err := s.client.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *customerService) Delete(ctx context.Context, merchantCode, customerID, token string) error {
	path := fmt.Sprintf("/customer/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(customerID))
	return s.client.delete(ctx, path, token, nil)
}
