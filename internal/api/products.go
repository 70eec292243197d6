package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/postill/internal/models"
)

// Products lists catalog products. filters, when non-nil, is appended to the
// request as a query string; the server-side filter set is owned by the API.
func (c *Client) Products(ctx context.Context, filters url.Values) ([]models.Product, error) {
	path := "/products"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, path, nil, "", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, "", &product); err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return product, nil
}

// CreateProduct submits a new product. Writes go out as multipart form data
// so the image file can be attached.
func (c *Client) CreateProduct(ctx context.Context, draft models.ProductDraft) error {
	if err := c.doMultipart(ctx, http.MethodPost, "/products", productFields(draft), productFiles(draft), nil); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces the writable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, draft models.ProductDraft) error {
	path := "/products/" + strconv.FormatInt(id, 10)
	if err := c.doMultipart(ctx, http.MethodPut, path, productFields(draft), productFiles(draft), nil); err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func productFields(draft models.ProductDraft) map[string]string {
	return map[string]string{
		"name":        draft.Name,
		"price":       draft.Price.String(),
		"category_id": strconv.FormatInt(draft.CategoryID, 10),
		"description": draft.Description,
	}
}

func productFiles(draft models.ProductDraft) map[string]string {
	return map[string]string{"image": draft.ImagePath}
}
