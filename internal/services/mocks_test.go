package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// In-memory fakes for the store interfaces. They guard their maps with
// mutexes so the concurrency tests exercise real interleavings.

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *memUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) EmailExists(email string) (bool, error) {
	_, err := s.FindByEmail(email)
	return err == nil, nil
}

func (s *memUserStore) MobileExists(mobileNo string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.MobileNo == mobileNo {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Activate(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			user.IsActive = true
		}
	}
	return nil
}

func (s *memUserStore) SetStatus(id uuid.UUID, status models.AccountStatus) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	user.Status = status
	clone := *user
	return &clone, nil
}

func (s *memUserStore) RecordLogin(id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memOTPStore struct {
	mu    sync.Mutex
	codes map[string]models.OneTimeCode
}

func newMemOTPStore() *memOTPStore {
	return &memOTPStore{codes: make(map[string]models.OneTimeCode)}
}

func (s *memOTPStore) Replace(code *models.OneTimeCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code.Email] = *code
	return nil
}

func (s *memOTPStore) ConsumeLive(email, code string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.codes[email]
	if ok && record.Code == code && record.ExpiresAt.After(now) {
		delete(s.codes, email)
		return true, nil
	}
	return false, nil
}

func (s *memOTPStore) DeleteStale(email, code string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.codes[email]
	if ok && record.Code == code && !record.ExpiresAt.After(now) {
		delete(s.codes, email)
		return true, nil
	}
	return false, nil
}

func (s *memOTPStore) DeleteExpired(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for email, record := range s.codes {
		if !record.ExpiresAt.After(now) {
			delete(s.codes, email)
			n++
		}
	}
	return n, nil
}

func (s *memOTPStore) has(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.codes[email]
	return ok
}

type memInventoryStore struct {
	mu     sync.Mutex
	counts map[uuid.UUID]*models.Inventory
}

func newMemInventoryStore() *memInventoryStore {
	return &memInventoryStore{counts: make(map[uuid.UUID]*models.Inventory)}
}

func (s *memInventoryStore) seed(productID uuid.UUID, stock, reserved int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[productID] = &models.Inventory{Stock: stock, Reserved: reserved}
}

func (s *memInventoryStore) snapshot(productID uuid.UUID) models.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv, ok := s.counts[productID]; ok {
		return *inv
	}
	return models.Inventory{}
}

func (s *memInventoryStore) Reserve(productID uuid.UUID, qty int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.counts[productID]
	if !ok || inv.Stock-inv.Reserved < qty {
		return false, nil
	}
	inv.Reserved += qty
	return true, nil
}

func (s *memInventoryStore) Release(productID uuid.UUID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv, ok := s.counts[productID]; ok {
		inv.Reserved -= qty
		if inv.Reserved < 0 {
			inv.Reserved = 0
		}
	}
	return nil
}

func (s *memInventoryStore) Commit(productID uuid.UUID, qty int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.counts[productID]
	if !ok || inv.Reserved < qty || inv.Stock < qty {
		return false, nil
	}
	inv.Stock -= qty
	inv.Reserved -= qty
	return true, nil
}

func (s *memInventoryStore) SetStock(productID uuid.UUID, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.counts[productID]
	if !ok {
		return store.ErrNotFound
	}
	if inv.Reserved > stock {
		return store.ErrStockBelowReserved
	}
	inv.Stock = stock
	return nil
}

type memProductStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[uuid.UUID]*models.Product)}
}

func (s *memProductStore) Create(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	s.products[product.ID] = &clone
	return nil
}

func (s *memProductStore) Update(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *product
	s.products[product.ID] = &clone
	return nil
}

func (s *memProductStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product, ok := s.products[id]; ok {
		clone := *product
		return &clone, nil
	}
	return nil, store.ErrNotFound
}

func (s *memProductStore) List(limit, offset int) ([]models.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		result = append(result, *product)
	}
	return result, int64(len(result)), nil
}

func (s *memProductStore) CategoryExists(id uuid.UUID) (bool, error) {
	return true, nil
}

func (s *memProductStore) CreateCategory(category *models.Category) error {
	return nil
}

func (s *memProductStore) ListCategories() ([]models.Category, error) {
	return nil, nil
}

type memOrderStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: make(map[uuid.UUID]*models.Order)}
}

func (s *memOrderStore) Create(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	for i := range order.StatusHistory {
		order.StatusHistory[i].OrderID = order.ID
	}
	clone := *order
	s.orders[order.ID] = &clone
	return nil
}

func (s *memOrderStore) Find(id uuid.UUID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[id]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, store.ErrNotFound
}

func (s *memOrderStore) FindByID(id, userID uuid.UUID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[id]; ok && order.UserID == userID {
		clone := *order
		return &clone, nil
	}
	return nil, store.ErrNotFound
}

func (s *memOrderStore) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, int64(len(result)), nil
}

func (s *memOrderStore) AppendStatus(entry *models.OrderStatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[entry.OrderID]
	if !ok {
		return store.ErrNotFound
	}
	order.StatusHistory = append(order.StatusHistory, *entry)
	return nil
}

type memCartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uuid.UUID]*models.Cart)}
}

func (s *memCartStore) GetOrCreate(userID uuid.UUID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.UserID == userID {
			clone := *cart
			return &clone, nil
		}
	}
	cart := &models.Cart{UserID: userID}
	cart.ID = uuid.New()
	s.carts[cart.ID] = cart
	clone := *cart
	return &clone, nil
}

func (s *memCartStore) Get(userID uuid.UUID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.UserID == userID {
			clone := *cart
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCartStore) UpsertItem(cartID, productID uuid.UUID, quantity int, priceCents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if cart.Items[i].Quantity+quantity > models.CartLineMaxQuantity {
				return store.ErrQuantityCapExceeded
			}
			cart.Items[i].Quantity += quantity
			cart.Items[i].PriceCents = priceCents
			return nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		PriceCents: priceCents,
	})
	return nil
}

func (s *memCartStore) RemoveItem(cartID, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memCartStore) Clear(cartID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[cartID]; ok {
		cart.Items = nil
	}
	return nil
}

type memWishlistStore struct {
	mu        sync.Mutex
	wishlists map[uuid.UUID]*models.Wishlist
}

func newMemWishlistStore() *memWishlistStore {
	return &memWishlistStore{wishlists: make(map[uuid.UUID]*models.Wishlist)}
}

func (s *memWishlistStore) GetOrCreate(userID uuid.UUID) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wishlist := range s.wishlists {
		if wishlist.UserID == userID {
			clone := *wishlist
			return &clone, nil
		}
	}
	wishlist := &models.Wishlist{UserID: userID}
	wishlist.ID = uuid.New()
	s.wishlists[wishlist.ID] = wishlist
	clone := *wishlist
	return &clone, nil
}

func (s *memWishlistStore) AddItem(wishlistID, productID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist, ok := s.wishlists[wishlistID]
	if !ok {
		return store.ErrNotFound
	}
	for _, item := range wishlist.Items {
		if item.ProductID == productID {
			return store.ErrDuplicate
		}
	}
	wishlist.Items = append(wishlist.Items, models.WishlistItem{
		WishlistID: wishlistID,
		ProductID:  productID,
		AddedAt:    at,
	})
	return nil
}

func (s *memWishlistStore) RemoveItem(wishlistID, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist, ok := s.wishlists[wishlistID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range wishlist.Items {
		if wishlist.Items[i].ProductID == productID {
			wishlist.Items = append(wishlist.Items[:i], wishlist.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memPaymentStore struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*models.Payment
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{payments: make(map[uuid.UUID]*models.Payment)}
}

func (s *memPaymentStore) Create(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	for i := range payment.StatusHistory {
		payment.StatusHistory[i].PaymentID = payment.ID
	}
	clone := *payment
	s.payments[payment.ID] = &clone
	return nil
}

func (s *memPaymentStore) FindByID(id uuid.UUID) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment, ok := s.payments[id]; ok {
		clone := *payment
		return &clone, nil
	}
	return nil, store.ErrNotFound
}

func (s *memPaymentStore) AppendStatus(entry *models.PaymentStatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[entry.PaymentID]
	if !ok {
		return store.ErrNotFound
	}
	payment.StatusHistory = append(payment.StatusHistory, *entry)
	return nil
}

type sentMail struct {
	to   string
	code string
}

type mockMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
	done chan struct{}
}

func newMockMailer() *mockMailer {
	return &mockMailer{done: make(chan struct{}, 16)}
}

func (m *mockMailer) SendOTP(to, code string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMail{to: to, code: code})
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.err
}

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
