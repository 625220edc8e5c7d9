package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bazaar/internal/models"
)

func newCartFixture(t *testing.T) (*CartService, *memProductStore) {
	t.Helper()
	products := newMemProductStore()
	return NewCartService(newMemCartStore(), products), products
}

func seedProduct(t *testing.T, products *memProductStore, priceCents int64) *models.Product {
	t.Helper()
	product := &models.Product{Name: uuid.NewString(), PriceCents: priceCents}
	require.NoError(t, products.Create(product))
	return product
}

func TestGetCartCreatesEmptyCartOnFirstUse(t *testing.T) {
	svc, _ := newCartFixture(t)
	userID := uuid.New()

	cart, err := svc.GetCart(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)

	again, err := svc.GetCart(userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestAddItemSnapshotsCatalogPrice(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)

	cart, err := svc.AddItem(userID, book.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1999), cart.Items[0].PriceCents)
	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, int64(2*1999), cart.SubtotalCents())
}

func TestAddItemMergesExistingLine(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)

	_, err := svc.AddItem(userID, book.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(userID, book.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemRejectsMergePastLineCap(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)

	_, err := svc.AddItem(userID, book.ID, 60)
	require.NoError(t, err)

	// Each add is in range on its own, but the merged line would exceed
	// the cap: the merge is rejected and the line keeps its old quantity.
	_, err = svc.AddItem(userID, book.ID, 60)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	cart, err := svc.GetCart(userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 60, cart.Items[0].Quantity)

	// Merging up to exactly the cap still goes through.
	cart, err = svc.AddItem(userID, book.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, cart.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)

	_, err := svc.AddItem(userID, book.ID, 0)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	_, err = svc.AddItem(userID, book.ID, 101)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	_, err = svc.AddItem(userID, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)
	pen := seedProduct(t, products, 250)

	_, err := svc.AddItem(userID, book.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(userID, pen.ID, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(userID, book.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, pen.ID, cart.Items[0].ProductID)

	_, err = svc.RemoveItem(userID, book.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearCart(t *testing.T) {
	svc, products := newCartFixture(t)
	userID := uuid.New()
	book := seedProduct(t, products, 1999)

	_, err := svc.AddItem(userID, book.ID, 3)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(userID))

	cart, err := svc.GetCart(userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Clearing a user with no cart is a no-op.
	assert.NoError(t, svc.Clear(uuid.New()))
}
