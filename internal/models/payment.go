package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod enumerates accepted payment instruments.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// PaymentStatus walks pending -> completed|failed, with refunded reachable
// from completed.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// CanTransitionPayment reports whether a payment may move between statuses.
func CanTransitionPayment(from, to PaymentStatus) bool {
	switch from {
	case PaymentPending:
		return to == PaymentCompleted || to == PaymentFailed
	case PaymentCompleted:
		return to == PaymentRefunded
	}
	return false
}

// Payment records money movement against exactly one order.
type Payment struct {
	BaseModel
	OrderID       uuid.UUID            `gorm:"type:uuid;index" json:"order_id"`
	Method        PaymentMethod        `gorm:"type:varchar(16)" json:"method"`
	TransactionID string               `json:"transaction_id"`
	AmountCents   int64                `json:"amount_cents"`
	StatusHistory []PaymentStatusEntry `json:"status_history,omitempty"`
}

// PaymentStatusEntry is one append-only payment status record.
type PaymentStatusEntry struct {
	BaseModel
	PaymentID uuid.UUID     `gorm:"type:uuid;index" json:"payment_id"`
	Status    PaymentStatus `gorm:"type:varchar(16)" json:"status"`
	ChangedAt time.Time     `json:"changed_at"`
}

// CurrentStatus returns the most recent status entry, or PaymentPending when
// the history is empty.
func (p *Payment) CurrentStatus() PaymentStatus {
	if len(p.StatusHistory) == 0 {
		return PaymentPending
	}
	return p.StatusHistory[len(p.StatusHistory)-1].Status
}
