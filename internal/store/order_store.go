package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormOrderStore is the Postgres-backed OrderStore.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore constructs a GormOrderStore.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *GormOrderStore) Find(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc")
		}).
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormOrderStore) FindByID(id, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc")
		}).
		Preload("Payments").Preload("Payments.StatusHistory").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormOrderStore) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc")
		}).
		Order("placed_at desc").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (s *GormOrderStore) AppendStatus(entry *models.OrderStatusEntry) error {
	return s.db.Create(entry).Error
}
