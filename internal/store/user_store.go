package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormUserStore is the Postgres-backed UserStore.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore constructs a GormUserStore.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) EmailExists(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *GormUserStore) MobileExists(mobileNo string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("mobile_no = ?", mobileNo).Count(&count).Error
	return count > 0, err
}

func (s *GormUserStore) Activate(email string) error {
	return s.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("is_active", true).Error
}

func (s *GormUserStore) SetStatus(id uuid.UUID, status models.AccountStatus) (*models.User, error) {
	result := s.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *GormUserStore) RecordLogin(id uuid.UUID, at time.Time) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
