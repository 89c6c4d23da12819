// Package cart reconciles the two cart representations the storefront deals
// with: the local in-process cart of an anonymous user and the server-owned
// cart of a signed-in user. Every operation routes to exactly one of the two;
// the stores are never merged.
package cart

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/session"
)

// Gateway is the subset of the remote API the cart engine depends on.
type Gateway interface {
	GetCart(ctx context.Context, token string) (*model.CartSnapshot, error)
	UpsertItem(ctx context.Context, token, productID string, quantity int) (*model.CartSnapshot, error)
	RemoveItem(ctx context.Context, token, productID string) (*model.CartSnapshot, error)
	ClearCart(ctx context.Context, token string) error
}

// backend is one of the two cart stores behind a uniform contract. The engine
// selects a backend per operation based on the session.
type backend interface {
	// get returns the normalised cart contents. It never fails: a backend
	// that cannot reach its store degrades to its last-known state.
	get(ctx context.Context, sess session.Session) []model.CartLine

	// add puts qty more units of the product into the cart.
	add(ctx context.Context, sess session.Session, product model.Product, qty int) error

	// setQuantity replaces the quantity of an existing line. qty is at
	// least 1; lower values are routed to remove by the engine.
	setQuantity(ctx context.Context, sess session.Session, productID string, qty int) error

	// remove deletes a single line.
	remove(ctx context.Context, sess session.Session, productID string) error

	// clear empties the cart.
	clear(ctx context.Context, sess session.Session) error
}
