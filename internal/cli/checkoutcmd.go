package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/receipt"
)

// Checkout submits the cart as an order and prints the receipt. On failure
// the cart stays as it was.
func (a *App) Checkout(ctx context.Context) error {
	rcpt, err := a.checkout.Submit(ctx)
	if err != nil {
		if errors.Is(err, common.ErrEmptyCart) {
			printlnFn("Your cart is empty")
			return err
		}
		a.log.Error(ctx, "checkout failed", "error", err)
		printlnFn("Failed to place order. Please try again:", err.Error())
		return err
	}

	printlnFn("Order placed successfully!")
	return a.printReceipt(ctx, rcpt)
}

// printReceipt writes the receipt to stdout and, when configured, appends a
// copy to the receipt file.
func (a *App) printReceipt(ctx context.Context, rcpt *receipt.Receipt) error {
	if err := receipt.Render(os.Stdout, receipt.DefaultStore, rcpt); err != nil {
		a.log.Error(ctx, "failed to render receipt", "order_id", rcpt.OrderID, "error", err)
		return err
	}

	if a.config.ReceiptFile == "" {
		return nil
	}

	f, err := os.OpenFile(a.config.ReceiptFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		a.log.Warn(ctx, "failed to open receipt file", "path", a.config.ReceiptFile, "error", err)
		return nil
	}
	defer f.Close()

	if err := receipt.Render(f, receipt.DefaultStore, rcpt); err != nil {
		a.log.Warn(ctx, "failed to write receipt file", "path", a.config.ReceiptFile, "error", err)
		return nil
	}
	fmt.Fprintln(f)
	return nil
}
