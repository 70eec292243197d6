// Package cli implements the interactive POS terminal: a command loop over
// the catalog, cart, checkout, order, and administration commands.
//
// Command handlers log their own errors and print a short message for the
// operator; no failure ever terminates the loop.
package cli
