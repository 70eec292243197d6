package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

// Add puts a product into the cart: "add <product-id> [qty]". The "scan"
// alias covers the barcode quick-add flow with a quantity of one.
func (a *App) Add(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: add <product-id> [qty]")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	qty := 1
	if len(args) > 1 {
		qty, err = strconv.Atoi(args[1])
		if err != nil || qty < 1 {
			printlnFn("Quantity must be a positive number")
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	product, err := a.api.Product(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to fetch product", "id", id, "error", err)
		printlnFn("Could not load product:", err.Error())
		return err
	}

	if err := a.cart.AddLine(ctx, product, qty); err != nil {
		a.log.Error(ctx, "failed to add to cart", "id", id, "error", err)
		printlnFn("Could not add to cart:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added %s x%d to cart", product.Name, qty))
	return nil
}

// SetQty replaces a line's quantity: "qty <product-id> <qty>". A quantity of
// zero removes the line.
func (a *App) SetQty(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: qty <product-id> <qty>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: qty <product-id> <qty>")
		return fmt.Errorf("missing quantity")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Quantity must be a number")
		return err
	}

	if err := a.cart.SetQuantity(ctx, id, qty); err != nil {
		a.log.Error(ctx, "failed to set quantity", "id", id, "error", err)
		printlnFn("Could not update cart:", err.Error())
		return err
	}
	return a.ShowCart(ctx)
}

// Remove drops a line from the cart: "remove <product-id>".
func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: remove <product-id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.cart.RemoveLine(ctx, id); err != nil {
		a.log.Error(ctx, "failed to remove line", "id", id, "error", err)
		printlnFn("Could not update cart:", err.Error())
		return err
	}
	return a.ShowCart(ctx)
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear cart", "error", err)
		printlnFn("Could not clear cart:", err.Error())
		return err
	}
	printlnFn("Cart cleared")
	return nil
}

// ShowCart prints the current lines with the derived totals.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tQty\tPrice\tTotal")
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			l.Product.ID, l.Product.Name, l.Quantity,
			l.Product.Price.StringFixed(2), l.LineTotal().StringFixed(2))
	}
	_ = tw.Flush()

	printlnFn(fmt.Sprintf("Items: %d  Subtotal: %s", a.cart.TotalItems(), a.cart.Subtotal().StringFixed(2)))
	return nil
}
