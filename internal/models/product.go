package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductStatus gates catalog visibility.
type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// DeliveryMethod enumerates the shipping tiers offered per product.
type DeliveryMethod string

const (
	DeliveryFree     DeliveryMethod = "free"
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryExpress  DeliveryMethod = "express"
)

// ValidDeliveryMethod reports whether s names a known delivery method.
func ValidDeliveryMethod(s string) bool {
	switch DeliveryMethod(s) {
	case DeliveryFree, DeliveryStandard, DeliveryExpress:
		return true
	}
	return false
}

type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description"`
}

// Inventory keeps the stock bookkeeping for a product. The invariant
// stock - reserved >= 0 is enforced by the conditional updates in the store
// layer, never by read-then-write code.
type Inventory struct {
	Stock    int `json:"stock"`
	Reserved int `json:"reserved"`
}

// Available is the quantity orderable right now.
func (i Inventory) Available() int {
	return i.Stock - i.Reserved
}

type Product struct {
	BaseModel
	Name        string         `gorm:"uniqueIndex" json:"name"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Category    *Category      `json:"category,omitempty"`
	Inventory   Inventory      `gorm:"embedded;embeddedPrefix:inventory_" json:"inventory"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Shipping    DeliveryMethod `gorm:"type:varchar(16);default:'standard'" json:"shipping"`
	Status      ProductStatus  `gorm:"type:varchar(16);default:'draft'" json:"status"`

	DeliveryOptions []ProductDeliveryOption `json:"delivery_options,omitempty"`
}

// ProductDeliveryOption prices a delivery method for one product.
type ProductDeliveryOption struct {
	BaseModel
	ProductID     uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Method        DeliveryMethod `gorm:"type:varchar(16)" json:"method"`
	PriceCents    int64          `json:"price_cents"`
	EstimatedDays int            `json:"estimated_days"`
}
