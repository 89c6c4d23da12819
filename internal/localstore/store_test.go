package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

func line(id string, qty int) model.CartLine {
	return model.CartLine{ID: id, Name: "Product " + id, UnitPrice: 1000, Quantity: qty}
}

func TestStore_InsertionOrder(t *testing.T) {
	store := Open("", zerolog.Nop())

	store.Upsert(line("p1", 1))
	store.Upsert(line("p2", 2))
	store.Upsert(line("p3", 3))

	// Re-upserting an existing line keeps its position.
	updated := line("p1", 5)
	store.Upsert(updated)

	lines := store.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{lines[0].ID, lines[1].ID, lines[2].ID})
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestStore_UpsertClampsQuantity(t *testing.T) {
	store := Open("", zerolog.Nop())

	store.Upsert(line("p1", 0))
	store.Upsert(line("p2", -3))

	for _, l := range store.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

func TestStore_Remove(t *testing.T) {
	store := Open("", zerolog.Nop())
	store.Upsert(line("p1", 1))
	store.Upsert(line("p2", 1))
	store.Upsert(line("p3", 1))

	store.Remove("p2")

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ID)
	assert.Equal(t, "p3", lines[1].ID)

	// Removing an absent id is a no-op.
	store.Remove("p2")
	assert.Equal(t, 2, store.Len())
}

func TestStore_Clear(t *testing.T) {
	store := Open("", zerolog.Nop())
	store.Upsert(line("p1", 1))
	store.Upsert(line("p2", 1))

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Lines())
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store := Open(path, zerolog.Nop())
	store.Upsert(line("p1", 2))
	store.Upsert(line("p2", 1))
	store.Remove("p2")

	reopened := Open(path, zerolog.Nop())
	lines := reopened.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := Open(path, zerolog.Nop())

	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadDropsInvalidLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	data := `[{"_id":"p1","name":"A","price":100,"quantity":2},{"_id":"","quantity":1},{"_id":"p2","quantity":0}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store := Open(path, zerolog.Nop())

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ID)
}
