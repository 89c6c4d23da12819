package cart

import (
	"context"

	"github.com/rs/zerolog"

	"storefront/internal/confirm"
	"storefront/internal/localstore"
	"storefront/internal/model"
	"storefront/internal/session"
)

// Engine routes every cart operation to exactly one backing store based on
// the session, and exposes one normalised view over both. It owns the local
// store and the cached remote snapshot exclusively; no other component
// mutates them.
type Engine struct {
	local     *localBackend
	remote    *remoteBackend
	confirmer confirm.Confirmer
	logger    zerolog.Logger
}

// NewEngine creates the reconciliation engine. placeholderImage is used for
// remote cart lines whose product carries no image.
func NewEngine(gw Gateway, store *localstore.Store, confirmer confirm.Confirmer, placeholderImage string, logger zerolog.Logger) *Engine {
	logger = logger.With().Str("service", "cart").Logger()
	return &Engine{
		local:     &localBackend{store: store},
		remote:    newRemoteBackend(gw, placeholderImage, logger),
		confirmer: confirmer,
		logger:    logger,
	}
}

// backendFor selects the store for a session. A signed-in session bypasses
// the local cart entirely; any local-only lines become invisible until the
// user signs out again.
func (e *Engine) backendFor(sess session.Session) backend {
	if sess.Authenticated() {
		return e.remote
	}
	return e.local
}

// GetCart returns the current cart as display lines. It never fails: a
// remote fetch error degrades to the last-known (possibly empty) state.
func (e *Engine) GetCart(ctx context.Context, sess session.Session) []model.CartLine {
	return e.backendFor(sess).get(ctx, sess)
}

// AddItem puts qty more units of the product into the cart.
func (e *Engine) AddItem(ctx context.Context, sess session.Session, product model.Product, qty int) error {
	return e.backendFor(sess).add(ctx, sess, product, qty)
}

// SetQuantity replaces the quantity of a cart line. A quantity below 1
// delegates to RemoveItem so no line is ever stored at zero.
func (e *Engine) SetQuantity(ctx context.Context, sess session.Session, productID string, qty int) error {
	if qty < 1 {
		return e.RemoveItem(ctx, sess, productID)
	}
	return e.backendFor(sess).setQuantity(ctx, sess, productID, qty)
}

// RemoveItem deletes a single cart line. Removing from the local cart is
// destructive with no server copy to fall back on, so it is gated on user
// confirmation; a decline is a no-op. A line that is not in the local cart is
// never prompted for.
func (e *Engine) RemoveItem(ctx context.Context, sess session.Session, productID string) error {
	if !sess.Authenticated() {
		if _, ok := e.local.store.Get(productID); !ok {
			return nil
		}
		if !e.confirmer.Confirm("Remove this item from the cart?") {
			e.logger.Debug().Str("product_id", productID).Msg("removal cancelled")
			return nil
		}
	}
	return e.backendFor(sess).remove(ctx, sess, productID)
}

// ClearCart empties the cart after user confirmation. A decline is a no-op.
func (e *Engine) ClearCart(ctx context.Context, sess session.Session) error {
	if !e.confirmer.Confirm("Remove every item from the cart?") {
		e.logger.Debug().Msg("clear cancelled")
		return nil
	}
	return e.backendFor(sess).clear(ctx, sess)
}

// ResetCart empties the cart without confirmation. It exists for flows where
// the user already committed to the outcome, such as after a placed order.
func (e *Engine) ResetCart(ctx context.Context, sess session.Session) error {
	return e.backendFor(sess).clear(ctx, sess)
}

// ComputeTotal sums unit price times quantity over all lines. A missing price
// counts as zero rather than failing the whole total.
func ComputeTotal(lines []model.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
