package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormPaymentStore is the Postgres-backed PaymentStore.
type GormPaymentStore struct {
	db *gorm.DB
}

// NewGormPaymentStore constructs a GormPaymentStore.
func NewGormPaymentStore(db *gorm.DB) *GormPaymentStore {
	return &GormPaymentStore{db: db}
}

func (s *GormPaymentStore) Create(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

func (s *GormPaymentStore) FindByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("changed_at asc")
	}).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *GormPaymentStore) AppendStatus(entry *models.PaymentStatusEntry) error {
	return s.db.Create(entry).Error
}
