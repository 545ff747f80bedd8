package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-headphone-store/models"
)

// MemoryUserStore is an in-memory UserStore guarded by a mutex. It backs
// handler and middleware tests and mirrors the Mongo store's semantics,
// including remove-first cart removal and atomic checkout/invoice moves.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrUserExists
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := cloneUser(user)
	s.users[user.ID] = stored
	return nil
}

func (s *MemoryUserStore) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *MemoryUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findBy(func(u *models.User) bool { return u.Email == email })
}

func (s *MemoryUserStore) UserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return s.findBy(func(u *models.User) bool { return u.MobileNo == mobile })
}

func (s *MemoryUserStore) findBy(match func(*models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if match(user) {
			return cloneUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string, changedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = hash
	user.PasswordChangedAt = changedAt
	return nil
}

func (s *MemoryUserStore) PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Cart = append(user.Cart, item)
	return nil
}

func (s *MemoryUserStore) RemoveCartItem(ctx context.Context, id primitive.ObjectID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	for i, item := range user.Cart {
		if item.ItemID == itemID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *MemoryUserStore) ClearCart(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Cart = []models.CartItem{}
	return nil
}

func (s *MemoryUserStore) Checkout(ctx context.Context, id primitive.ObjectID, totalAmount float64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	record := models.CheckoutRecord{
		Items:       append([]models.CartItem{}, user.Cart...),
		TotalAmount: totalAmount,
		CreatedAt:   at,
	}
	user.Checkout = append(user.Checkout, record)
	user.Cart = []models.CartItem{}
	return nil
}

func (s *MemoryUserStore) CreateInvoice(ctx context.Context, id primitive.ObjectID, address models.BillingAddress, paymentOption string, at time.Time) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	invoice := models.Invoice{
		ID:            len(user.Invoices) + 1,
		Records:       append([]models.CheckoutRecord{}, user.Checkout...),
		Address:       address,
		PaymentOption: paymentOption,
		CreatedAt:     at,
	}
	user.Invoices = append(user.Invoices, invoice)
	user.Checkout = []models.CheckoutRecord{}

	result := invoice
	return &result, nil
}

func cloneUser(user *models.User) *models.User {
	clone := *user
	clone.Cart = append([]models.CartItem{}, user.Cart...)
	clone.Checkout = append([]models.CheckoutRecord{}, user.Checkout...)
	clone.Invoices = append([]models.Invoice{}, user.Invoices...)
	return &clone
}

// MemoryDataStore is an in-memory catalog used by tests.
type MemoryDataStore struct {
	mu    sync.Mutex
	items []models.Data
}

// NewMemoryDataStore creates a catalog store holding the given items.
func NewMemoryDataStore(items []models.Data) *MemoryDataStore {
	return &MemoryDataStore{
		items: append([]models.Data{}, items...),
	}
}

func (s *MemoryDataStore) All(ctx context.Context) ([]models.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Data{}, s.items...), nil
}

func (s *MemoryDataStore) ByNumericIDs(ctx context.Context, ids []int) ([]models.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	matched := []models.Data{}
	for _, item := range s.items {
		if wanted[item.ID] {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
