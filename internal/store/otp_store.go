package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormOTPStore is the Postgres-backed OTPStore. The single-use guarantee
// rests on delete statements carrying their own predicates: the row check and
// the row removal are one statement, so two racing consumers cannot both see
// RowsAffected == 1.
type GormOTPStore struct {
	db *gorm.DB
}

// NewGormOTPStore constructs a GormOTPStore.
func NewGormOTPStore(db *gorm.DB) *GormOTPStore {
	return &GormOTPStore{db: db}
}

func (s *GormOTPStore) Replace(code *models.OneTimeCode) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", code.Email).
			Delete(&models.OneTimeCode{}).Error; err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

func (s *GormOTPStore) ConsumeLive(email, code string, now time.Time) (bool, error) {
	result := s.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, now).
		Delete(&models.OneTimeCode{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *GormOTPStore) DeleteStale(email, code string, now time.Time) (bool, error) {
	result := s.db.Where("email = ? AND code = ? AND expires_at <= ?", email, code, now).
		Delete(&models.OneTimeCode{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *GormOTPStore) DeleteExpired(now time.Time) (int64, error) {
	result := s.db.Where("expires_at <= ?", now).Delete(&models.OneTimeCode{})
	return result.RowsAffected, result.Error
}
