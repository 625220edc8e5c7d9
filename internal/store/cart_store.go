package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormCartStore is the Postgres-backed CartStore.
type GormCartStore struct {
	db *gorm.DB
}

// NewGormCartStore constructs a GormCartStore.
func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

func (s *GormCartStore) GetOrCreate(userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Get(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID}
	if err := s.db.Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *GormCartStore) Get(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (s *GormCartStore) UpsertItem(cartID, productID uuid.UUID, quantity int, priceCents int64) error {
	// The merge is a single guarded UPDATE: it only applies while the
	// combined quantity stays within the per-line cap, so two racing adds
	// cannot stack a line past it.
	result := s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ? AND quantity + ? <= ?",
			cartID, productID, quantity, models.CartLineMaxQuantity).
		UpdateColumns(map[string]interface{}{
			"quantity":    gorm.Expr("quantity + ?", quantity),
			"price_cents": priceCents,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	// No row updated: either the line does not exist yet, or the merge
	// would exceed the cap.
	var count int64
	err := s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrQuantityCapExceeded
	}

	item := models.CartItem{
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		PriceCents: priceCents,
	}
	return s.db.Create(&item).Error
}

func (s *GormCartStore) RemoveItem(cartID, productID uuid.UUID) error {
	result := s.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormCartStore) Clear(cartID uuid.UUID) error {
	return s.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
