package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/postill/internal/models"
)

// AddCategory creates a category: "addcat <name...>".
func (a *App) AddCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: addcat <name>")
		return errors.New("missing category name")
	}
	name := strings.Join(args, " ")

	if err := a.api.CreateCategory(ctx, name); err != nil {
		a.log.Error(ctx, "failed to create category", "name", name, "error", err)
		printlnFn("Could not create category:", err.Error())
		return err
	}
	printlnFn("Category created")
	return nil
}

// EditCategory renames a category: "editcat <id> <name...>".
func (a *App) EditCategory(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: editcat <id> <name>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: editcat <id> <name>")
		return errors.New("missing category name")
	}
	name := strings.Join(args[1:], " ")

	if err := a.api.UpdateCategory(ctx, id, name); err != nil {
		a.log.Error(ctx, "failed to update category", "id", id, "error", err)
		printlnFn("Could not update category:", err.Error())
		return err
	}
	printlnFn("Category updated")
	return nil
}

// DeleteCategory removes a category: "delcat <id>".
func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: delcat <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.DeleteCategory(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete category", "id", id, "error", err)
		printlnFn("Could not delete category:", err.Error())
		return err
	}
	printlnFn("Category deleted")
	return nil
}

// AddProduct collects product fields interactively and creates the product.
func (a *App) AddProduct(ctx context.Context) error {
	draft, err := a.inputProductDraft()
	if err != nil {
		return err
	}

	if err := a.api.CreateProduct(ctx, draft); err != nil {
		a.log.Error(ctx, "failed to create product", "name", draft.Name, "error", err)
		printlnFn("Could not create product:", err.Error())
		return err
	}
	printlnFn("Product created")
	return nil
}

// EditProduct collects replacement fields and updates the product:
// "editproduct <id>".
func (a *App) EditProduct(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: editproduct <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	draft, err := a.inputProductDraft()
	if err != nil {
		return err
	}

	if err := a.api.UpdateProduct(ctx, id, draft); err != nil {
		a.log.Error(ctx, "failed to update product", "id", id, "error", err)
		printlnFn("Could not update product:", err.Error())
		return err
	}
	printlnFn("Product updated")
	return nil
}

// DeleteProduct removes a product: "delproduct <id>".
func (a *App) DeleteProduct(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: delproduct <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.DeleteProduct(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete product", "id", id, "error", err)
		printlnFn("Could not delete product:", err.Error())
		return err
	}
	printlnFn("Product deleted")
	return nil
}

func (a *App) inputProductDraft() (models.ProductDraft, error) {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return models.ProductDraft{}, err
	}
	price, err := GetDecimal(a.reader, "Price", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return models.ProductDraft{}, err
	}
	categoryID, err := GetInt(a.reader, "Category id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return models.ProductDraft{}, err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return models.ProductDraft{}, err
	}
	imagePath, err := getSimpleText(a.reader, "Image file path (empty to skip)", os.Stdout)
	if err != nil {
		return models.ProductDraft{}, err
	}

	return models.ProductDraft{
		Name:        name,
		Price:       price,
		CategoryID:  categoryID,
		Description: description,
		ImagePath:   imagePath,
	}, nil
}
