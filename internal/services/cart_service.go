package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// CartService maintains the single live cart per user. Line prices are
// snapshotted from the catalog at add time.
type CartService struct {
	carts    store.CartStore
	products store.ProductStore
}

// NewCartService constructs a CartService.
func NewCartService(carts store.CartStore, products store.ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *CartService) GetCart(userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem adds quantity units of the product, merging with an existing line.
func (s *CartService) AddItem(userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	if quantity < models.CartLineMinQuantity || quantity > models.CartLineMaxQuantity {
		return nil, ErrQuantityOutOfRange
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.UpsertItem(cart.ID, productID, quantity, product.PriceCents); err != nil {
		if errors.Is(err, store.ErrQuantityCapExceeded) {
			return nil, ErrQuantityOutOfRange
		}
		return nil, err
	}

	return s.carts.Get(userID)
}

// RemoveItem drops the product's line from the cart.
func (s *CartService) RemoveItem(userID, productID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.Get(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.carts.RemoveItem(cart.ID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.carts.Get(userID)
}

// Clear empties the user's cart, typically after a successful order.
func (s *CartService) Clear(userID uuid.UUID) error {
	cart, err := s.carts.Get(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.carts.Clear(cart.ID)
}
