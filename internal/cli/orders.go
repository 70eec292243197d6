package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/postill/internal/receipt"
)

// Orders lists past orders.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.api.Orders(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to fetch orders", "error", err)
		printlnFn("Could not load orders:", err.Error())
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tReference\tTotal\tCreated")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			o.ID, o.Reference, o.Total.StringFixed(2), o.CreatedAt.Format("02 Jan 2006 15:04"))
	}
	_ = tw.Flush()
	return nil
}

// ShowOrder prints one order with its line items: "order <id>".
func (a *App) ShowOrder(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: order <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	order, err := a.api.Order(ctx, id)
	if err != nil {
		printlnFn("Could not load order:", err.Error())
		return err
	}
	items, err := a.api.OrderItems(ctx, id)
	if err != nil {
		printlnFn("Could not load order items:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Order #%d  reference %s  total %s", order.ID, order.Reference, order.Total.StringFixed(2)))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Product\tQty\tPrice\tTotal")
	for _, item := range items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", name, item.Quantity, item.Price.StringFixed(2), lineTotal.StringFixed(2))
	}
	_ = tw.Flush()
	return nil
}

// DeleteOrder removes an order: "delorder <id>".
func (a *App) DeleteOrder(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: delorder <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.DeleteOrder(ctx, id); err != nil {
		a.log.Error(ctx, "failed to delete order", "id", id, "error", err)
		printlnFn("Could not delete order:", err.Error())
		return err
	}
	printlnFn("Order deleted")
	return nil
}

// Reprint reconstructs the receipt of a past order from the API's price
// snapshots: "reprint <id>".
func (a *App) Reprint(ctx context.Context, args []string) error {
	id, err := parseID(args, "Usage: reprint <id>")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	order, err := a.api.Order(ctx, id)
	if err != nil {
		printlnFn("Could not load order:", err.Error())
		return err
	}
	items, err := a.api.OrderItems(ctx, id)
	if err != nil {
		printlnFn("Could not load order items:", err.Error())
		return err
	}

	rcpt := &receipt.Receipt{
		OrderID:   order.ID,
		Reference: order.Reference,
		Items:     items,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	return a.printReceipt(ctx, rcpt)
}
