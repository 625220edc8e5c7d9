package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormWishlistStore is the Postgres-backed WishlistStore.
type GormWishlistStore struct {
	db *gorm.DB
}

// NewGormWishlistStore constructs a GormWishlistStore.
func NewGormWishlistStore(db *gorm.DB) *GormWishlistStore {
	return &GormWishlistStore{db: db}
}

func (s *GormWishlistStore) GetOrCreate(userID uuid.UUID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&wishlist).Error
	if err == nil {
		return &wishlist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wishlist = models.Wishlist{UserID: userID}
	if err := s.db.Create(&wishlist).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (s *GormWishlistStore) AddItem(wishlistID, productID uuid.UUID, at time.Time) error {
	item := models.WishlistItem{
		WishlistID: wishlistID,
		ProductID:  productID,
		AddedAt:    at,
	}
	if err := s.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormWishlistStore) RemoveItem(wishlistID, productID uuid.UUID) error {
	result := s.db.Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
