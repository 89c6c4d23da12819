// Package catalog composes the product detail view: the product itself, its
// reviews, the viewer's review eligibility and related products.
package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"storefront/internal/model"
	"storefront/internal/session"
)

// relatedLimit caps how many related products are shown.
const relatedLimit = 6

// Gateway is the subset of the remote API the catalog depends on.
type Gateway interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	GetReviews(ctx context.Context, productID string) ([]model.Review, error)
	CanReview(ctx context.Context, token, productID string) (bool, error)
	SubmitReview(ctx context.Context, token, productID string, req *model.ReviewRequest) (*model.Review, error)
}

// ProductDetail is the composed detail view.
type ProductDetail struct {
	Product   model.Product
	Reviews   []model.Review
	CanReview bool
	Related   []model.Product
}

// Service implements the product detail aggregation.
type Service struct {
	gw     Gateway
	logger zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(gw Gateway, logger zerolog.Logger) *Service {
	return &Service{
		gw:     gw,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// LoadDetail fans out the detail fetches. Only the primary product fetch can
// fail the call; reviews, eligibility and related products degrade to empty
// results so one slow or broken endpoint never blanks the whole screen.
func (s *Service) LoadDetail(ctx context.Context, sess session.Session, productID string) (*ProductDetail, error) {
	product, err := s.gw.GetProduct(ctx, productID)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID).Msg("product fetch failed")
		return nil, err
	}

	detail := &ProductDetail{Product: *product}

	// The secondary fetches are independent of each other. None of them
	// returns an error into the group; failures degrade in place.
	var g errgroup.Group

	g.Go(func() error {
		reviews, err := s.gw.GetReviews(ctx, productID)
		if err != nil {
			s.logger.Debug().Err(err).Str("product_id", productID).Msg("review fetch failed")
			return nil
		}
		detail.Reviews = reviews
		return nil
	})

	if sess.Authenticated() {
		g.Go(func() error {
			canReview, err := s.gw.CanReview(ctx, sess.Token, productID)
			if err != nil {
				s.logger.Debug().Err(err).Str("product_id", productID).Msg("eligibility fetch failed")
				return nil
			}
			detail.CanReview = canReview
			return nil
		})
	}

	if product.Category.ID != "" {
		g.Go(func() error {
			related, err := s.gw.GetProductsByCategory(ctx, product.Category.ID)
			if err != nil {
				s.logger.Debug().Err(err).Str("category_id", product.Category.ID).Msg("related fetch failed")
				return nil
			}
			detail.Related = filterRelated(related, productID)
			return nil
		})
	}

	_ = g.Wait()
	return detail, nil
}

// SubmitReview validates and submits a new review, returning the created
// review so the caller can prepend it to the visible list. All validation
// happens before any network call.
func (s *Service) SubmitReview(ctx context.Context, sess session.Session, productID string, req *model.ReviewRequest) (*model.Review, error) {
	if !sess.Authenticated() {
		return nil, model.ErrUnauthenticated
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, model.ErrEmptyComment
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, model.ErrInvalidRating
	}

	review, err := s.gw.SubmitReview(ctx, sess.Token, productID, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID).Msg("review submission failed")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", productID).
		Int("rating", req.Rating).
		Msg("review submitted")

	return review, nil
}

// filterRelated drops the product itself and caps the list.
func filterRelated(products []model.Product, selfID string) []model.Product {
	related := make([]model.Product, 0, relatedLimit)
	for _, p := range products {
		if p.ID == selfID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}
