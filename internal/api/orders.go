package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/postill/internal/models"
)

// Orders lists past orders.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, "", &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, "", &order); err != nil {
		return models.Order{}, fmt.Errorf("failed to fetch order %d: %w", id, err)
	}
	return order, nil
}

// CreateOrder submits a new order in a single request. There is no partial
// success: the call either creates the whole order or fails.
func (c *Client) CreateOrder(ctx context.Context, order models.NewOrder) (models.Order, error) {
	var created models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return models.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/orders/"+strconv.FormatInt(id, 10), nil, "", nil); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}

// OrderItems fetches the line items of an order, each carrying the unit
// price captured at the time of sale.
func (c *Client) OrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	path := "/orders/" + strconv.FormatInt(orderID, 10) + "/items"

	var items []models.OrderItem
	if err := c.do(ctx, http.MethodGet, path, nil, "", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch items of order %d: %w", orderID, err)
	}
	return items, nil
}
