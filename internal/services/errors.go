package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Workflow errors returned verbatim to the HTTP boundary. Anything else that
// escapes a service is treated as internal and must not leak to clients.
var (
	ErrEmailTaken         = errors.New("email address already registered")
	ErrMobileTaken        = errors.New("mobile number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is temporarily locked")
	ErrInvalidCode        = errors.New("invalid otp code")
	ErrCodeExpired        = errors.New("otp code has expired")
	ErrAlreadyActive      = errors.New("account is already active")
	ErrEmptyCart          = errors.New("cart is empty, nothing to order")
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 100")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrAlreadyWishlisted  = errors.New("product already in wishlist")
	ErrStockBelowReserved = errors.New("stock cannot be set below reserved units")
	ErrNotFound           = errors.New("record not found")
)

// InsufficientStockError reports which product could not cover a reservation.
type InsufficientStockError struct {
	ProductID uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}
