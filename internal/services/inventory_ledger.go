package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/store"
)

// InventoryLedger tracks stock against reservations. All arithmetic happens
// as conditional updates inside the store, so the ledger stays correct under
// concurrent callers without holding locks here.
type InventoryLedger struct {
	inventory store.InventoryStore
}

// NewInventoryLedger constructs an InventoryLedger.
func NewInventoryLedger(inventory store.InventoryStore) *InventoryLedger {
	return &InventoryLedger{inventory: inventory}
}

// Reserve places a hold on qty units. It fails with InsufficientStockError
// when available stock cannot cover the request.
func (l *InventoryLedger) Reserve(productID uuid.UUID, qty int) error {
	ok, err := l.inventory.Reserve(productID, qty)
	if err != nil {
		return err
	}
	if !ok {
		return &InsufficientStockError{ProductID: productID}
	}
	return nil
}

// Release returns qty held units to the available pool, floored at zero.
func (l *InventoryLedger) Release(productID uuid.UUID, qty int) error {
	return l.inventory.Release(productID, qty)
}

// SetStock replaces the stock level for a product. Levels below the units
// currently reserved are rejected.
func (l *InventoryLedger) SetStock(productID uuid.UUID, stock int) error {
	if err := l.inventory.SetStock(productID, stock); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, store.ErrStockBelowReserved) {
			return ErrStockBelowReserved
		}
		return err
	}
	return nil
}

// Commit converts a reservation into a permanent stock decrement on
// fulfillment.
func (l *InventoryLedger) Commit(productID uuid.UUID, qty int) error {
	ok, err := l.inventory.Commit(productID, qty)
	if err != nil {
		return err
	}
	if !ok {
		return &InsufficientStockError{ProductID: productID}
	}
	return nil
}
