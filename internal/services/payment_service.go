package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// PaymentService records payments against placed orders. Gateway integration
// is out of scope; these are bookkeeping records with an append-only status
// history.
type PaymentService struct {
	payments store.PaymentStore
	orders   store.OrderStore
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(payments store.PaymentStore, orders store.OrderStore) *PaymentService {
	return &PaymentService{payments: payments, orders: orders}
}

// RecordPayment creates a pending payment for the order. The amount defaults
// to the order total when zero.
func (s *PaymentService) RecordPayment(orderID, userID uuid.UUID, method models.PaymentMethod, transactionID string, amountCents int64) (*models.Payment, error) {
	order, err := s.orders.FindByID(orderID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if amountCents == 0 {
		amountCents = order.TotalCents()
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		Method:        method,
		TransactionID: transactionID,
		AmountCents:   amountCents,
		StatusHistory: []models.PaymentStatusEntry{{
			Status:    models.PaymentPending,
			ChangedAt: time.Now(),
		}},
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// AdvanceStatus appends the next payment status entry.
func (s *PaymentService) AdvanceStatus(paymentID uuid.UUID, next models.PaymentStatus) (*models.Payment, error) {
	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !models.CanTransitionPayment(payment.CurrentStatus(), next) {
		return nil, ErrInvalidTransition
	}

	entry := &models.PaymentStatusEntry{
		PaymentID: payment.ID,
		Status:    next,
		ChangedAt: time.Now(),
	}
	if err := s.payments.AppendStatus(entry); err != nil {
		return nil, err
	}
	payment.StatusHistory = append(payment.StatusHistory, *entry)

	return payment, nil
}
