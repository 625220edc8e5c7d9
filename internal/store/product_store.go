package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/models"
)

// GormProductStore is the Postgres-backed ProductStore.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore constructs a GormProductStore.
func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *GormProductStore) Update(product *models.Product) error {
	return s.db.Save(product).Error
}

func (s *GormProductStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Category").Preload("DeliveryOptions").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormProductStore) List(limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := s.db.Preload("Category").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (s *GormProductStore) CategoryExists(id uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *GormProductStore) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *GormProductStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name").Find(&categories).Error
	return categories, err
}
