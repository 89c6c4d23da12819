package gateway

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

// GetCart reads the server-side cart of the authenticated user.
func (c *Client) GetCart(ctx context.Context, token string) (*model.CartSnapshot, error) {
	var snap model.CartSnapshot
	if err := c.do(ctx, http.MethodGet, "/carts", token, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// UpsertItem sets the quantity of a product in the server-side cart and
// returns the resulting cart state.
func (c *Client) UpsertItem(ctx context.Context, token, productID string, quantity int) (*model.CartSnapshot, error) {
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	var snap model.CartSnapshot
	if err := c.do(ctx, http.MethodPut, "/carts", token, body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// RemoveItem deletes a product from the server-side cart and returns the
// resulting cart state.
func (c *Client) RemoveItem(ctx context.Context, token, productID string) (*model.CartSnapshot, error) {
	var snap model.CartSnapshot
	path := "/carts/" + url.PathEscape(productID)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ClearCart empties the server-side cart. Some deployments answer with an
// empty body, so no response shape is required.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/carts/clear", token, nil, nil)
}
