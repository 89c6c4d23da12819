// Package checkout validates checkout input, assembles the order payload from
// the reconciled cart and submits it.
package checkout

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/session"
)

// OrderGateway is the subset of the remote API checkout depends on.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, token string, req *model.OrderRequest) (*model.Order, error)
}

// CartResetter clears the active cart after a placed order.
type CartResetter interface {
	ResetCart(ctx context.Context, sess session.Session) error
}

// Service implements the order submission flow.
type Service struct {
	gw     OrderGateway
	cart   CartResetter
	logger zerolog.Logger
}

// NewService creates a new checkout service.
func NewService(gw OrderGateway, cart CartResetter, logger zerolog.Logger) *Service {
	return &Service{
		gw:     gw,
		cart:   cart,
		logger: logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder validates the checkout input, submits the order and clears the
// cart on success before returning, so a subsequent cart view cannot show the
// just-ordered items. A failed submission leaves the cart untouched so the
// user can retry.
//
// Validation short-circuits on the first failure, in this order: user
// identity, address and phone, non-empty cart, token. The token may be absent
// even when a user object is cached (expired session), which is why it is
// checked separately and last.
func (s *Service) PlaceOrder(ctx context.Context, sess session.Session, lines []model.CartLine, address, phone string) (*model.Order, error) {
	if sess.User == nil || sess.User.ID == "" {
		return nil, model.ErrUnauthenticated
	}
	if strings.TrimSpace(address) == "" || strings.TrimSpace(phone) == "" {
		return nil, model.ErrMissingContact
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}
	if !sess.Authenticated() {
		return nil, model.ErrUnauthenticated
	}

	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{ProductID: line.ID, Quantity: line.Quantity}
	}

	req := &model.OrderRequest{
		UserID:        sess.User.ID,
		Items:         items,
		Address:       address,
		Phone:         phone,
		PaymentMethod: model.PaymentMethodCOD,
	}

	order, err := s.gw.PlaceOrder(ctx, sess.Token, req)
	if err != nil {
		s.logger.Warn().Err(err).Int("item_count", len(items)).Msg("order submission failed")
		return nil, err
	}

	// Clear before signalling success. A failed clear is logged but does
	// not undo the placed order.
	if err := s.cart.ResetCart(ctx, sess); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after order")
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(items)).
		Msg("order placed")

	return order, nil
}
