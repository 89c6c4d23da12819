package gateway

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

// GetProduct fetches a single product by id. An absent product surfaces as a
// NOT_FOUND domain error.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByCategory fetches all products of a category.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	var products []model.Product
	path := "/products?category=" + url.QueryEscape(categoryID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
