// Package cart holds the line items the operator is assembling before
// checkout. The store is an app-lifetime singleton mirrored into durable
// storage on every mutation, so an unfinished sale survives a restart.
//
// Invariants: at most one line per product id, and no line ever exists with
// a quantity below one; setting a quantity to zero removes the line.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/models"
	"github.com/dmitrijs2005/postill/internal/storage"
)

type Store struct {
	repo storage.Repository
	log  logging.Logger

	lines []models.CartLine
	subs  []func()
}

func NewStore(repo storage.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Subscribe registers fn to be called after every cart change.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Restore rehydrates the cart from the durable slot. A malformed slot is
// discarded and the cart starts empty.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, storage.KeyCart)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.log.Warn(ctx, "discarding malformed persisted cart", "error", err)
		if derr := s.repo.Delete(ctx, storage.KeyCart); derr != nil {
			return fmt.Errorf("failed to discard malformed cart: %w", derr)
		}
		return nil
	}

	s.lines = lines
	s.notify()
	return nil
}

// AddLine merges qty into an existing line for the product or appends a new
// one. qty below one is a no-op.
func (s *Store) AddLine(ctx context.Context, product models.Product, qty int) error {
	if qty <= 0 {
		return nil
	}

	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, models.CartLine{Product: product, Quantity: qty})
	}

	return s.persist(ctx)
}

// SetQuantity replaces the quantity of the product's line. qty of zero or
// below removes the line entirely; a line is never retained at zero.
func (s *Store) SetQuantity(ctx context.Context, productID int64, qty int) error {
	if qty <= 0 {
		return s.RemoveLine(ctx, productID)
	}

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = qty
			return s.persist(ctx)
		}
	}
	return nil
}

// RemoveLine drops the product's line, if present.
func (s *Store) RemoveLine(ctx context.Context, productID int64) error {
	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return nil
	}

	s.lines = kept
	return s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	return s.persist(ctx)
}

// Reset drops the in-memory lines without touching the durable slot. Used
// after logout, which already deleted the slot itself.
func (s *Store) Reset() {
	s.lines = nil
	s.notify()
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems returns the sum of quantities. Recomputed on every call.
func (s *Store) TotalItems() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of price times quantity over all lines.
// Recomputed on every call, never cached.
func (s *Store) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// persist writes the full line list to the durable slot immediately after
// the in-memory update, then notifies subscribers.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.repo.Put(ctx, storage.KeyCart, raw); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	s.notify()
	return nil
}
