// Package catalog fetches products and categories and provides the
// client-side filter used by the sale and product views.
package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/models"
)

// AllCategories selects every category when passed to Filter.
const AllCategories int64 = 0

// ProductsAPI is the slice of the API client the catalog service needs.
type ProductsAPI interface {
	Products(ctx context.Context, filters url.Values) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type Service struct {
	api ProductsAPI
	log logging.Logger
}

func NewService(api ProductsAPI, log logging.Logger) *Service {
	return &Service{api: api, log: log}
}

// Products fetches the full product list. Filtering happens client-side via
// Filter; no query parameters are sent.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	return s.api.Products(ctx, nil)
}

// Categories fetches the category list.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

// Filter returns the products whose name contains query (case-insensitive)
// AND whose category matches categoryID (AllCategories matches everything).
// Pure and synchronous; an empty result is a valid result.
func Filter(products []models.Product, query string, categoryID int64) []models.Product {
	query = strings.ToLower(query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if categoryID != AllCategories && p.CategoryID != categoryID {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// FindByID locates a product in an already fetched list, used by the
// quick-add ("scan") flow.
func FindByID(products []models.Product, id int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
