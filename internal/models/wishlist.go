package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is the single wishlist owned by a user.
type Wishlist struct {
	BaseModel
	UserID uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Items  []WishlistItem `json:"items"`
}

// WishlistItem holds one product per wishlist: the composite unique index
// makes the database the final arbiter against duplicate adds.
type WishlistItem struct {
	BaseModel
	WishlistID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_product" json:"wishlist_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_product" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// Contains reports whether the wishlist already holds the product.
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
