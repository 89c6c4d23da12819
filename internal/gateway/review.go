package gateway

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

// GetReviews fetches all reviews of a product.
func (c *Client) GetReviews(ctx context.Context, productID string) ([]model.Review, error) {
	var reviews []model.Review
	path := "/reviews/product/" + url.PathEscape(productID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CanReview reports whether the authenticated user may review the product.
func (c *Client) CanReview(ctx context.Context, token, productID string) (bool, error) {
	var result struct {
		CanReview bool `json:"canReview"`
	}
	path := "/reviews/can-review/" + url.PathEscape(productID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return false, err
	}
	return result.CanReview, nil
}

// SubmitReview creates a new review and returns it.
func (c *Client) SubmitReview(ctx context.Context, token, productID string, req *model.ReviewRequest) (*model.Review, error) {
	var result struct {
		Review model.Review `json:"review"`
	}
	path := "/reviews/product/" + url.PathEscape(productID)
	if err := c.do(ctx, http.MethodPost, path, token, req, &result); err != nil {
		return nil, err
	}
	return &result.Review, nil
}
