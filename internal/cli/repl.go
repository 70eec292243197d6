package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Products(ctx context.Context) error
	Categories(ctx context.Context) error
	FilterProducts(ctx context.Context) error
	Dashboard(ctx context.Context) error

	ShowCart(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	SetQty(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error

	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context, args []string) error
	DeleteOrder(ctx context.Context, args []string) error
	Reprint(ctx context.Context, args []string) error

	AddCategory(ctx context.Context, args []string) error
	EditCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, args []string) error
	DeleteProduct(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: products, categories, filter, scan, dashboard,\n" +
		"  cart, add, qty, remove, clear, checkout,\n" +
		"  orders, order, delorder, reprint,\n" +
		"  addcat, editcat, delcat, addproduct, editproduct, delproduct,\n" +
		"  logout, exit"
)

// runREPL starts the command loop of the POS terminal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the operator. The loop exits on scanner EOF or when the operator
// types "exit" or "quit".
//
// Every command except help, register, login, and exit requires an active
// session; the REPL refuses them otherwise and points the operator to "login".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to the POS terminal (type 'help' for commands)")

	for {
		fmt.Printf("pos %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first ('login').")
			continue
		}

		switch cmd {
		case "products", "p":
			_ = a.Products(ctx)
		case "categories":
			_ = a.Categories(ctx)
		case "filter":
			_ = a.FilterProducts(ctx)
		case "dashboard":
			_ = a.Dashboard(ctx)

		case "cart":
			_ = a.ShowCart(ctx)
		case "add", "scan":
			_ = a.Add(ctx, args)
		case "qty":
			_ = a.SetQty(ctx, args)
		case "remove":
			_ = a.Remove(ctx, args)
		case "clear":
			_ = a.ClearCart(ctx)
		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)
		case "order":
			_ = a.ShowOrder(ctx, args)
		case "delorder":
			_ = a.DeleteOrder(ctx, args)
		case "reprint":
			_ = a.Reprint(ctx, args)

		case "addcat":
			_ = a.AddCategory(ctx, args)
		case "editcat":
			_ = a.EditCategory(ctx, args)
		case "delcat":
			_ = a.DeleteCategory(ctx, args)
		case "addproduct":
			_ = a.AddProduct(ctx)
		case "editproduct":
			_ = a.EditProduct(ctx, args)
		case "delproduct":
			_ = a.DeleteProduct(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
