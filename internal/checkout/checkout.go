// Package checkout submits the current cart as an order and builds the
// local receipt projection.
package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/postill/internal/cart"
	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/models"
	"github.com/dmitrijs2005/postill/internal/receipt"
	"github.com/dmitrijs2005/postill/internal/session"
)

// OrdersAPI is the slice of the API client the checkout service needs.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, order models.NewOrder) (models.Order, error)
}

type Service struct {
	api     OrdersAPI
	cart    *cart.Store
	session *session.Store
	log     logging.Logger
}

func NewService(api OrdersAPI, cartStore *cart.Store, sessionStore *session.Store, log logging.Logger) *Service {
	return &Service{api: api, cart: cartStore, session: sessionStore, log: log}
}

// Submit sends the cart as one order request. On success it returns the
// receipt projection (reference, line items with unit-price snapshots from
// the cart, computed total) and clears the cart. On failure the cart is
// left intact. The order call is atomic from the client's perspective, so
// no partial-order state can exist.
func (s *Service) Submit(ctx context.Context) (*receipt.Receipt, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, common.ErrEmptyCart
	}

	user := s.session.Current()
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}

	order := models.NewOrder{UserID: user.ID}
	for _, l := range lines {
		order.Items = append(order.Items, models.NewOrderItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		})
	}

	created, err := s.api.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	rcpt := s.buildReceipt(created, lines)

	if err := s.cart.Clear(ctx); err != nil {
		// the order is already placed; an unpersisted clear must not
		// invalidate the sale
		s.log.Warn(ctx, "order placed but cart clear failed", "order_id", created.ID, "error", err)
	}

	s.log.Info(ctx, "order placed",
		"order_id", created.ID, "reference", rcpt.Reference, "total", rcpt.Total)
	return rcpt, nil
}

// buildReceipt projects the created order plus the submitted cart lines into
// a printable receipt. Prices come from the cart snapshot, not from the live
// catalog, and the total is recomputed from those snapshots.
func (s *Service) buildReceipt(created models.Order, lines []models.CartLine) *receipt.Receipt {
	rcpt := &receipt.Receipt{
		OrderID:   created.ID,
		Reference: created.Reference,
		CreatedAt: created.CreatedAt,
	}
	if rcpt.Reference == "" {
		rcpt.Reference = generateReference()
	}
	if rcpt.CreatedAt.IsZero() {
		rcpt.CreatedAt = time.Now()
	}

	for i, l := range lines {
		product := l.Product
		rcpt.Items = append(rcpt.Items, models.OrderItem{
			ID:        int64(i),
			OrderID:   created.ID,
			ProductID: product.ID,
			Product:   &product,
			Quantity:  l.Quantity,
			Price:     product.Price,
		})
		rcpt.Total = rcpt.Total.Add(l.LineTotal())
	}
	return rcpt
}

// generateReference produces a human-readable fallback reference for servers
// that omit one in the create response.
func generateReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "POS-" + id[:8]
}
