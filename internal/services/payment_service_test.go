package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bazaar/internal/models"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *memOrderStore) {
	t.Helper()
	orders := newMemOrderStore()
	return NewPaymentService(newMemPaymentStore(), orders), orders
}

func seedOrder(t *testing.T, orders *memOrderStore, userID uuid.UUID, totalCents int64) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:   userID,
		PlacedAt: time.Now(),
		Items: []models.OrderItem{{
			ProductID:      uuid.New(),
			Quantity:       1,
			UnitPriceCents: totalCents,
		}},
		StatusHistory: []models.OrderStatusEntry{{
			Status:    models.OrderPending,
			ChangedAt: time.Now(),
		}},
	}
	require.NoError(t, orders.Create(order))
	return order
}

func TestRecordPaymentDefaultsToOrderTotal(t *testing.T) {
	svc, orders := newPaymentFixture(t)
	userID := uuid.New()
	order := seedOrder(t, orders, userID, 4999)

	payment, err := svc.RecordPayment(order.ID, userID, models.PaymentCard, "txn-001", 0)
	require.NoError(t, err)

	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, int64(4999), payment.AmountCents)
	assert.Equal(t, models.PaymentPending, payment.CurrentStatus())
}

func TestRecordPaymentKeepsExplicitAmount(t *testing.T) {
	svc, orders := newPaymentFixture(t)
	userID := uuid.New()
	order := seedOrder(t, orders, userID, 4999)

	payment, err := svc.RecordPayment(order.ID, userID, models.PaymentCash, "", 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), payment.AmountCents)
}

func TestRecordPaymentScopedToOwner(t *testing.T) {
	svc, orders := newPaymentFixture(t)
	order := seedOrder(t, orders, uuid.New(), 4999)

	_, err := svc.RecordPayment(order.ID, uuid.New(), models.PaymentCard, "txn-002", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentStatusTransitions(t *testing.T) {
	svc, orders := newPaymentFixture(t)
	userID := uuid.New()
	order := seedOrder(t, orders, userID, 4999)

	payment, err := svc.RecordPayment(order.ID, userID, models.PaymentCard, "txn-003", 0)
	require.NoError(t, err)

	completed, err := svc.AdvanceStatus(payment.ID, models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, completed.CurrentStatus())
	require.Len(t, completed.StatusHistory, 2)

	refunded, err := svc.AdvanceStatus(payment.ID, models.PaymentRefunded)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, refunded.CurrentStatus())

	// Refunded is terminal.
	_, err = svc.AdvanceStatus(payment.ID, models.PaymentPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPaymentCannotRefundWithoutCompletion(t *testing.T) {
	svc, orders := newPaymentFixture(t)
	userID := uuid.New()
	order := seedOrder(t, orders, userID, 4999)

	payment, err := svc.RecordPayment(order.ID, userID, models.PaymentCard, "txn-004", 0)
	require.NoError(t, err)

	_, err = svc.AdvanceStatus(payment.ID, models.PaymentRefunded)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.AdvanceStatus(uuid.New(), models.PaymentCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
