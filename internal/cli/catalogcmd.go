package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/postill/internal/catalog"
	"github.com/dmitrijs2005/postill/internal/models"
)

// Products lists the full catalog.
func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to fetch products", "error", err)
		printlnFn("Could not load products:", err.Error())
		return err
	}
	printProducts(products)
	return nil
}

// Categories lists all categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to fetch categories", "error", err)
		printlnFn("Could not load categories:", err.Error())
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
	}
	_ = tw.Flush()
	return nil
}

// FilterProducts prompts for a search term and category and prints the
// client-side filtered catalog. An empty result prints a notice, not an error.
func (a *App) FilterProducts(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search term (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	categoryID, err := GetInt(a.reader, "Category id (0 for all)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	products, err := a.catalog.Products(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to fetch products", "error", err)
		printlnFn("Could not load products:", err.Error())
		return err
	}

	matched := catalog.Filter(products, query, categoryID)
	if len(matched) == 0 {
		printlnFn("No products match.")
		return nil
	}
	printProducts(matched)
	return nil
}

// Dashboard prints catalog and sales figures computed from the fetched lists.
func (a *App) Dashboard(ctx context.Context) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		printlnFn("Could not load products:", err.Error())
		return err
	}
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn("Could not load categories:", err.Error())
		return err
	}
	orders, err := a.api.Orders(ctx)
	if err != nil {
		printlnFn("Could not load orders:", err.Error())
		return err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	printlnFn(fmt.Sprintf("Products:   %d", len(products)))
	printlnFn(fmt.Sprintf("Categories: %d", len(categories)))
	printlnFn(fmt.Sprintf("Orders:     %d", len(orders)))
	printlnFn(fmt.Sprintf("Revenue:    %s", revenue.StringFixed(2)))
	return nil
}

func printProducts(products []models.Product) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tPrice\tCategory")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.CategoryID)
	}
	_ = tw.Flush()
}
