package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormInventoryStore is the Postgres-backed InventoryStore. Every mutation is
// a single guarded UPDATE so concurrent reservations against the same product
// serialize on the row and the stock - reserved >= 0 invariant holds without
// in-process locking.
type GormInventoryStore struct {
	db *gorm.DB
}

// NewGormInventoryStore constructs a GormInventoryStore.
func NewGormInventoryStore(db *gorm.DB) *GormInventoryStore {
	return &GormInventoryStore{db: db}
}

func (s *GormInventoryStore) Reserve(productID uuid.UUID, qty int) (bool, error) {
	result := s.db.Model(&models.Product{}).
		Where("id = ? AND inventory_stock - inventory_reserved >= ?", productID, qty).
		UpdateColumn("inventory_reserved", gorm.Expr("inventory_reserved + ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *GormInventoryStore) Release(productID uuid.UUID, qty int) error {
	return s.db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("inventory_reserved", gorm.Expr("GREATEST(inventory_reserved - ?, 0)", qty)).
		Error
}

func (s *GormInventoryStore) Commit(productID uuid.UUID, qty int) (bool, error) {
	result := s.db.Model(&models.Product{}).
		Where("id = ? AND inventory_reserved >= ? AND inventory_stock >= ?", productID, qty, qty).
		UpdateColumns(map[string]interface{}{
			"inventory_stock":    gorm.Expr("inventory_stock - ?", qty),
			"inventory_reserved": gorm.Expr("inventory_reserved - ?", qty),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *GormInventoryStore) SetStock(productID uuid.UUID, stock int) error {
	// Guarded like Reserve: the new level must still cover every unit
	// currently held, or stock - reserved would go negative.
	result := s.db.Model(&models.Product{}).
		Where("id = ? AND inventory_reserved <= ?", productID, stock).
		UpdateColumn("inventory_stock", stock)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrStockBelowReserved
}
