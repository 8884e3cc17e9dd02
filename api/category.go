package api

import (
	"context"
	"fmt"
	"net/url"
)

type CategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoryService interface {
	Create(ctx context.Context, merchantCode string, req CategoryRequest, token string) (*Category, error)
	GetAll(ctx context.Context, merchantCode string) ([]Category, error)
	Get(ctx context.Context, merchantCode, categoryID string) (*Category, error)
	Update(ctx context.Context, merchantCode, categoryID string, req CategoryRequest, token string) (*Category, error)
	Delete(ctx context.Context, merchantCode, categoryID, token string) error
}

type categoryService struct {
	client *Client
}

func NewCategoryService(client *Client) CategoryService {
	return &categoryService{client: client}
}

func (s *categoryService) Create(ctx context.Context, merchantCode string, req CategoryRequest, token string) (*Category, error) {
	path := fmt.Sprintf("/category/%s/create", url.PathEscape(merchantCode))
	var out Category
	if err := s.client.post(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *categoryService) GetAll(ctx context.Context, merchantCode string) ([]Category, error) {
	path := fmt.Sprintf("/category/%s/all", url.PathEscape(merchantCode))
	out := []Category{}
	if err := s.client.get(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *categoryService) Get(ctx context.Context, merchantCode, categoryID string) (*Category, error) {
	path := fmt.Sprintf("/category/%s/get/%s", url.PathEscape(merchantCode), url.PathEscape(categoryID))
	var out Category
	if err := s.client.get(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *categoryService) Update(ctx context.Context, merchantCode, categoryID string, req CategoryRequest, token string) (*Category, error) {
	path := fmt.Sprintf("/category/%s/update/%s", url.PathEscape(merchantCode), url.PathEscape(categoryID))
	var out Category
	if err := s.client.patch(ctx, path, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *categoryService) Delete(ctx context.Context, merchantCode, categoryID, token string) error {
	path := fmt.Sprintf("/category/%s/delete/%s", url.PathEscape(merchantCode), url.PathEscape(categoryID))
	return s.client.delete(ctx, path, token, nil)
}
