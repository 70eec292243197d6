// Package common defines shared constants and sentinel errors used across
// the POS terminal layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// API boundary errors.
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Checkout errors.
	ErrEmptyCart = errors.New("cart is empty")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")
)
