package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientCategoryService struct {
	adapter adapter.ServerAdapter
}

func NewClientCategoryService(serverAdapter adapter.ServerAdapter) ClientCategoryService {
	return &clientCategoryService{adapter: serverAdapter}
}

func (c *clientCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := c.adapter.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", mapAdapterError(err))
	}
	return categories, nil
}

func (c *clientCategoryService) Create(ctx context.Context, name, color string) (models.Category, error) {
	req := models.CreateCategoryRequest{
		Name:  strings.TrimSpace(name),
		Color: strings.TrimSpace(color),
	}
	if req.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	category, err := c.adapter.CreateCategory(ctx, req)
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", mapAdapterError(err))
	}
	return category, nil
}
