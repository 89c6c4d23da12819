package cart

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/session"
)

// remoteBackend serves authenticated sessions from the server-side cart. The
// server stays authoritative: every mutation replaces the cached snapshot with
// the server's returned state, and the client never computes a post-update
// quantity itself.
type remoteBackend struct {
	gw          Gateway
	placeholder string
	logger      zerolog.Logger

	mu sync.Mutex
	// snapshot is the last server state seen for snapToken. It is display
	// cache only, never a source of truth.
	snapshot model.CartSnapshot
	// snapToken is the token the snapshot belongs to.
	snapToken string
	// currentToken is the token of the most recent operation; responses
	// from an older session are discarded instead of committed.
	currentToken string

	lockMu sync.Mutex
	// locks holds one mutex per product id ever mutated, never evicted;
	// the map is bounded by the catalogue size.
	locks map[string]*sync.Mutex
}

func newRemoteBackend(gw Gateway, placeholder string, logger zerolog.Logger) *remoteBackend {
	return &remoteBackend{
		gw:          gw,
		placeholder: placeholder,
		logger:      logger.With().Str("backend", "remote").Logger(),
		locks:       make(map[string]*sync.Mutex),
	}
}

// track records the session a new operation belongs to.
func (b *remoteBackend) track(token string) {
	b.mu.Lock()
	b.currentToken = token
	b.mu.Unlock()
}

// commit replaces the cached snapshot, unless the session changed while the
// request was in flight.
func (b *remoteBackend) commit(token string, snap *model.CartSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if token != b.currentToken {
		b.logger.Debug().Msg("discarding cart response from a replaced session")
		return
	}
	b.snapshot = *snap
	b.snapToken = token
}

// cached returns the last-known snapshot for the token, or an empty one.
func (b *remoteBackend) cached(token string) model.CartSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.snapToken != token {
		return model.CartSnapshot{}
	}
	return b.snapshot
}

// lockProduct serialises mutations per product id, so a rapid double-press on
// a quantity button cannot interleave two upserts for the same line.
func (b *remoteBackend) lockProduct(productID string) func() {
	b.lockMu.Lock()
	l, ok := b.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		b.locks[productID] = l
	}
	b.lockMu.Unlock()

	l.Lock()
	return l.Unlock
}

func (b *remoteBackend) get(ctx context.Context, sess session.Session) []model.CartLine {
	b.track(sess.Token)

	snap, err := b.gw.GetCart(ctx, sess.Token)
	if err != nil {
		b.logger.Warn().Err(err).Msg("cart fetch failed, showing last-known state")
		last := b.cached(sess.Token)
		return b.normalize(&last)
	}

	b.commit(sess.Token, snap)
	return b.normalize(snap)
}

func (b *remoteBackend) add(ctx context.Context, sess session.Session, product model.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}

	unlock := b.lockProduct(product.ID)
	defer unlock()
	b.track(sess.Token)

	// The target quantity builds on the server's current state, read fresh
	// so two adds from different devices still accumulate.
	snap, err := b.gw.GetCart(ctx, sess.Token)
	if err != nil {
		return err
	}
	current := 0
	for _, item := range snap.Items {
		if item.Product.ID == product.ID {
			current = item.Quantity
			break
		}
	}

	updated, err := b.gw.UpsertItem(ctx, sess.Token, product.ID, current+qty)
	if err != nil {
		return err
	}
	b.commit(sess.Token, updated)
	return nil
}

func (b *remoteBackend) setQuantity(ctx context.Context, sess session.Session, productID string, qty int) error {
	unlock := b.lockProduct(productID)
	defer unlock()
	b.track(sess.Token)

	snap, err := b.gw.UpsertItem(ctx, sess.Token, productID, qty)
	if err != nil {
		return err
	}
	b.commit(sess.Token, snap)
	return nil
}

func (b *remoteBackend) remove(ctx context.Context, sess session.Session, productID string) error {
	unlock := b.lockProduct(productID)
	defer unlock()
	b.track(sess.Token)

	snap, err := b.gw.RemoveItem(ctx, sess.Token, productID)
	if err != nil {
		return err
	}
	b.commit(sess.Token, snap)
	return nil
}

func (b *remoteBackend) clear(ctx context.Context, sess session.Session) error {
	b.track(sess.Token)

	if err := b.gw.ClearCart(ctx, sess.Token); err != nil {
		return err
	}
	b.commit(sess.Token, &model.CartSnapshot{})
	return nil
}

// normalize maps the embedded catalogue projections into display lines,
// falling back to the placeholder image when a product has none.
func (b *remoteBackend) normalize(snap *model.CartSnapshot) []model.CartLine {
	lines := make([]model.CartLine, 0, len(snap.Items))
	for _, item := range snap.Items {
		image := item.Product.FirstImageURL()
		if image == "" {
			image = b.placeholder
		}
		lines = append(lines, model.CartLine{
			ID:        item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Image:     image,
			Quantity:  item.Quantity,
		})
	}
	return lines
}
