package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus walks pending -> processing -> shipped -> delivered, with
// cancelled reachable from pending and processing.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// CanTransition reports whether an order may move from one status to another.
// History is append-only, so there is no way back.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderPending:
		return to == OrderProcessing || to == OrderCancelled
	case OrderProcessing:
		return to == OrderShipped || to == OrderCancelled
	case OrderShipped:
		return to == OrderDelivered
	}
	return false
}

// ShippingAddress is denormalized onto the order so later address edits do
// not rewrite history.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type Order struct {
	BaseModel
	UserID          uuid.UUID          `gorm:"type:uuid;index" json:"user_id"`
	User            *User              `json:"user,omitempty"`
	PlacedAt        time.Time          `json:"placed_at"`
	ShippingAddress ShippingAddress    `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Items           []OrderItem        `json:"items,omitempty"`
	StatusHistory   []OrderStatusEntry `json:"status_history,omitempty"`
	Payments        []Payment          `json:"payments,omitempty"`
}

// OrderItem carries the unit price snapshotted at placement time.
type OrderItem struct {
	BaseModel
	OrderID        uuid.UUID      `gorm:"type:uuid;index" json:"order_id"`
	ProductID      uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Quantity       int            `json:"quantity"`
	UnitPriceCents int64          `json:"unit_price_cents"`
	DeliveryOption DeliveryMethod `gorm:"type:varchar(16)" json:"delivery_option"`
}

// OrderStatusEntry is one append-only status history record.
type OrderStatusEntry struct {
	BaseModel
	OrderID   uuid.UUID   `gorm:"type:uuid;index" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(16)" json:"status"`
	ChangedAt time.Time   `json:"changed_at"`
	Note      string      `json:"note"`
}

// TotalCents derives the order total from its line items.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

// CurrentStatus returns the most recent status entry, or OrderPending when
// the history is empty.
func (o *Order) CurrentStatus() OrderStatus {
	if len(o.StatusHistory) == 0 {
		return OrderPending
	}
	return o.StatusHistory[len(o.StatusHistory)-1].Status
}
