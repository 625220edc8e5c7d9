package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
)

// ErrNotFound is returned when a record does not exist. Store callers must
// not leak gorm errors upward.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique index.
var ErrDuplicate = errors.New("record already exists")

// ErrQuantityCapExceeded is returned when merging into a cart line would
// push it past the per-line maximum.
var ErrQuantityCapExceeded = errors.New("cart line quantity cap exceeded")

// ErrStockBelowReserved is returned when a stock update would drop stock
// under the units currently held by reservations.
var ErrStockBelowReserved = errors.New("stock below reserved units")

// UserStore persists accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	MobileExists(mobileNo string) (bool, error)

	// Activate flips is_active for the account with this email.
	Activate(email string) error

	// SetStatus records the admin approval decision and returns the updated
	// account.
	SetStatus(id uuid.UUID, status models.AccountStatus) (*models.User, error)

	RecordLogin(id uuid.UUID, at time.Time) error
}

// OTPStore persists one-time codes. Consumption must be a single conditional
// delete so two racing confirms cannot both succeed.
type OTPStore interface {
	// Replace removes any code held for the email and inserts the new one,
	// atomically with respect to other Replace calls for the same email.
	Replace(code *models.OneTimeCode) error

	// ConsumeLive deletes the (email, code) record if it has not expired.
	// It reports whether a record was deleted.
	ConsumeLive(email, code string, now time.Time) (bool, error)

	// DeleteStale removes an expired (email, code) record, reporting whether
	// one existed.
	DeleteStale(email, code string, now time.Time) (bool, error)

	// DeleteExpired reaps every code past its TTL and returns the count.
	DeleteExpired(now time.Time) (int64, error)
}

// InventoryStore applies stock bookkeeping as atomic conditional updates
// against the persisted counters.
type InventoryStore interface {
	// Reserve increments reserved by qty only while stock - reserved >= qty
	// still holds, reporting whether the increment was applied.
	Reserve(productID uuid.UUID, qty int) (bool, error)

	// Release decrements reserved by qty, floored at zero.
	Release(productID uuid.UUID, qty int) error

	// Commit converts a reservation into a stock decrement, reporting
	// whether the guarded update was applied.
	Commit(productID uuid.UUID, qty int) (bool, error)

	// SetStock replaces the stock level, used by catalog administration.
	SetStock(productID uuid.UUID, stock int) error
}

// ProductStore persists the catalog.
type ProductStore interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*models.Product, error)
	List(limit, offset int) ([]models.Product, int64, error)
	CategoryExists(id uuid.UUID) (bool, error)
	CreateCategory(category *models.Category) error
	ListCategories() ([]models.Category, error)
}

// CartStore persists the single live cart per user.
type CartStore interface {
	GetOrCreate(userID uuid.UUID) (*models.Cart, error)
	Get(userID uuid.UUID) (*models.Cart, error)
	UpsertItem(cartID, productID uuid.UUID, quantity int, priceCents int64) error
	RemoveItem(cartID, productID uuid.UUID) error
	Clear(cartID uuid.UUID) error
}

// OrderStore persists orders and their append-only status history.
type OrderStore interface {
	Create(order *models.Order) error
	Find(id uuid.UUID) (*models.Order, error)
	FindByID(id, userID uuid.UUID) (*models.Order, error)
	ListByUser(userID uuid.UUID, limit, offset int) ([]models.Order, int64, error)
	AppendStatus(entry *models.OrderStatusEntry) error
}

// PaymentStore persists payment records.
type PaymentStore interface {
	Create(payment *models.Payment) error
	FindByID(id uuid.UUID) (*models.Payment, error)
	AppendStatus(entry *models.PaymentStatusEntry) error
}

// WishlistStore persists the single wishlist per user.
type WishlistStore interface {
	GetOrCreate(userID uuid.UUID) (*models.Wishlist, error)
	AddItem(wishlistID, productID uuid.UUID, at time.Time) error
	RemoveItem(wishlistID, productID uuid.UUID) error
}
