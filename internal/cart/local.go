package cart

import (
	"context"

	"storefront/internal/localstore"
	"storefront/internal/model"
	"storefront/internal/session"
)

// localBackend serves anonymous sessions from the in-process store. Lines are
// already in display shape, so no normalisation happens here.
type localBackend struct {
	store *localstore.Store
}

func (b *localBackend) get(_ context.Context, _ session.Session) []model.CartLine {
	return b.store.Lines()
}

func (b *localBackend) add(_ context.Context, _ session.Session, product model.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	if existing, ok := b.store.Get(product.ID); ok {
		existing.Quantity += qty
		b.store.Upsert(existing)
		return nil
	}

	b.store.Upsert(model.CartLine{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.FirstImageURL(),
		Quantity:  qty,
	})
	return nil
}

func (b *localBackend) setQuantity(_ context.Context, _ session.Session, productID string, qty int) error {
	line, ok := b.store.Get(productID)
	if !ok {
		return model.ErrProductNotFound
	}
	line.Quantity = qty
	b.store.Upsert(line)
	return nil
}

func (b *localBackend) remove(_ context.Context, _ session.Session, productID string) error {
	b.store.Remove(productID)
	return nil
}

func (b *localBackend) clear(_ context.Context, _ session.Session) error {
	b.store.Clear()
	return nil
}
