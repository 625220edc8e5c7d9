package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// OrderService places, cancels and advances orders, keeping the inventory
// ledger consistent with every status change.
type OrderService struct {
	orders   store.OrderStore
	products store.ProductStore
	ledger   *InventoryLedger
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders store.OrderStore, products store.ProductStore, ledger *InventoryLedger) *OrderService {
	return &OrderService{orders: orders, products: products, ledger: ledger}
}

// PlaceOrder reserves stock for every cart line and persists the order with
// an initial pending status. Reservation is all-or-nothing: the first line
// that cannot be covered releases every hold already acquired in this call.
// Payment creation and cart clearing stay with the caller.
func (s *OrderService) PlaceOrder(userID uuid.UUID, cart *models.Cart, shipping models.ShippingAddress) (*models.Order, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range cart.Items {
		if line.Quantity < models.CartLineMinQuantity || line.Quantity > models.CartLineMaxQuantity {
			return nil, ErrQuantityOutOfRange
		}
	}

	reserved := make([]models.CartItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		if err := s.ledger.Reserve(line.ProductID, line.Quantity); err != nil {
			s.releaseAll(reserved)
			return nil, err
		}
		reserved = append(reserved, line)
	}

	now := time.Now()
	order := &models.Order{
		UserID:          userID,
		PlacedAt:        now,
		ShippingAddress: shipping,
	}

	for _, line := range cart.Items {
		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			s.releaseAll(reserved)
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		// Snapshot the current price so later catalog edits leave the
		// order's history untouched.
		order.Items = append(order.Items, models.OrderItem{
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
			DeliveryOption: product.Shipping,
		})
	}

	order.StatusHistory = []models.OrderStatusEntry{{
		Status:    models.OrderPending,
		ChangedAt: now,
	}}

	if err := s.orders.Create(order); err != nil {
		s.releaseAll(reserved)
		return nil, err
	}

	return order, nil
}

// CancelOrder releases every line's reservation and appends the cancelled
// status entry. Only pending and processing orders can be cancelled.
func (s *OrderService) CancelOrder(orderID, userID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !models.CanTransition(order.CurrentStatus(), models.OrderCancelled) {
		return nil, ErrInvalidTransition
	}

	for _, item := range order.Items {
		if err := s.ledger.Release(item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	entry := &models.OrderStatusEntry{
		OrderID:   order.ID,
		Status:    models.OrderCancelled,
		ChangedAt: time.Now(),
		Note:      "cancelled by customer",
	}
	if err := s.orders.AppendStatus(entry); err != nil {
		return nil, err
	}
	order.StatusHistory = append(order.StatusHistory, *entry)

	return order, nil
}

// AdvanceStatus appends the next status entry for an order. Moving into
// shipped commits every reservation: the stock has left the warehouse.
func (s *OrderService) AdvanceStatus(orderID uuid.UUID, next models.OrderStatus, note string) (*models.Order, error) {
	order, err := s.orders.Find(orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !models.CanTransition(order.CurrentStatus(), next) {
		return nil, ErrInvalidTransition
	}

	// Every line is attempted even after a failure, so one bad line does
	// not strand the rest mid-transition. On any failure the status entry
	// is withheld and the transition can be retried once the ledger is
	// repaired.
	var ledgerErr error
	if next == models.OrderShipped {
		for _, item := range order.Items {
			if err := s.ledger.Commit(item.ProductID, item.Quantity); err != nil && ledgerErr == nil {
				ledgerErr = err
			}
		}
	}
	if next == models.OrderCancelled {
		for _, item := range order.Items {
			if err := s.ledger.Release(item.ProductID, item.Quantity); err != nil && ledgerErr == nil {
				ledgerErr = err
			}
		}
	}
	if ledgerErr != nil {
		return nil, ledgerErr
	}

	entry := &models.OrderStatusEntry{
		OrderID:   order.ID,
		Status:    next,
		ChangedAt: time.Now(),
		Note:      note,
	}
	if err := s.orders.AppendStatus(entry); err != nil {
		return nil, err
	}
	order.StatusHistory = append(order.StatusHistory, *entry)

	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	return s.orders.ListByUser(userID, limit, offset)
}

// GetOrder returns one order owned by the user.
func (s *OrderService) GetOrder(orderID, userID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) releaseAll(reserved []models.CartItem) {
	for _, line := range reserved {
		// Best effort: a failed release leaves a hold that the next
		// cancellation pass can still clear.
		_ = s.ledger.Release(line.ProductID, line.Quantity)
	}
}
