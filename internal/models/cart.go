package models

import "github.com/google/uuid"

const (
	// CartLineMinQuantity and CartLineMaxQuantity bound a single cart line.
	CartLineMinQuantity = 1
	CartLineMaxQuantity = 100
)

// Cart is the single live cart owned by a user.
type Cart struct {
	BaseModel
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartItem snapshots the price at the moment the product was added.
type CartItem struct {
	BaseModel
	CartID     uuid.UUID `gorm:"type:uuid;index" json:"cart_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// SubtotalCents sums price * quantity across all lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}
