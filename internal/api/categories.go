package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/postill/internal/models"
)

// Categories lists all product categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, "", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Category fetches a single category by id.
func (c *Client) Category(ctx context.Context, id int64) (models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+strconv.FormatInt(id, 10), nil, "", &category); err != nil {
		return models.Category{}, fmt.Errorf("failed to fetch category %d: %w", id, err)
	}
	return category, nil
}

// CreateCategory adds a new category with the given name.
func (c *Client) CreateCategory(ctx context.Context, name string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/categories", map[string]string{"name": name}, nil); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// UpdateCategory renames an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) error {
	path := "/categories/" + strconv.FormatInt(id, 10)
	if err := c.doJSON(ctx, http.MethodPut, path, map[string]string{"name": name}, nil); err != nil {
		return fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+strconv.FormatInt(id, 10), nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
