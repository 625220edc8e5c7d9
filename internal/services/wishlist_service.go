package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// WishlistService maintains the single wishlist per user.
type WishlistService struct {
	wishlists store.WishlistStore
	products  store.ProductStore
}

// NewWishlistService constructs a WishlistService.
func NewWishlistService(wishlists store.WishlistStore, products store.ProductStore) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

// GetWishlist returns the user's wishlist, creating an empty one on first use.
func (s *WishlistService) GetWishlist(userID uuid.UUID) (*models.Wishlist, error) {
	return s.wishlists.GetOrCreate(userID)
}

// AddProduct puts the product on the wishlist; duplicates are rejected.
func (s *WishlistService) AddProduct(userID, productID uuid.UUID) (*models.Wishlist, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	wishlist, err := s.wishlists.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if wishlist.Contains(productID) {
		return nil, ErrAlreadyWishlisted
	}

	// The unique index backs up this precheck: a racing add loses the
	// insert and reports the same duplicate error.
	if err := s.wishlists.AddItem(wishlist.ID, productID, time.Now()); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}

	return s.wishlists.GetOrCreate(userID)
}

// RemoveProduct drops the product from the wishlist.
func (s *WishlistService) RemoveProduct(userID, productID uuid.UUID) (*models.Wishlist, error) {
	wishlist, err := s.wishlists.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.wishlists.RemoveItem(wishlist.ID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.wishlists.GetOrCreate(userID)
}
