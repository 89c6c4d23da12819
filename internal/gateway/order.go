package gateway

import (
	"context"
	"net/http"

	"storefront/internal/model"
)

// PlaceOrder submits an order. A non-2xx response surfaces as a domain error
// carrying the server message when one is present.
func (c *Client) PlaceOrder(ctx context.Context, token string, req *model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
