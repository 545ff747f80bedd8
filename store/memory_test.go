package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-headphone-store/models"
)

func newStoredUser(t *testing.T, s *MemoryUserStore) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "A",
		MobileNo: "5551234",
		Email:    "a@x.com",
		Password: "hash",
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := NewMemoryUserStore()
	newStoredUser(t, s)

	err := s.CreateUser(context.Background(), &models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestRemoveCartItemFirstMatchOnly(t *testing.T) {
	s := NewMemoryUserStore()
	user := newStoredUser(t, s)
	ctx := context.Background()

	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "itemA"}))
	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "itemB"}))
	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "itemA"}))

	require.NoError(t, s.RemoveCartItem(ctx, user.ID, "itemA"))

	got, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []models.CartItem{{ItemID: "itemB"}, {ItemID: "itemA"}}, got.Cart)
}

func TestRemoveCartItemNotFoundLeavesCartUnchanged(t *testing.T) {
	s := NewMemoryUserStore()
	user := newStoredUser(t, s)
	ctx := context.Background()

	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "itemA"}))

	err := s.RemoveCartItem(ctx, user.ID, "missing")
	require.ErrorIs(t, err, ErrItemNotFound)

	got, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []models.CartItem{{ItemID: "itemA"}}, got.Cart)
}

func TestCheckoutMovesCartIntoRecord(t *testing.T) {
	s := NewMemoryUserStore()
	user := newStoredUser(t, s)
	ctx := context.Background()

	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "1"}))
	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "2"}))

	at := time.Now()
	require.NoError(t, s.Checkout(ctx, user.ID, 100, at))

	got, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, got.Cart)
	require.Len(t, got.Checkout, 1)
	require.Len(t, got.Checkout[0].Items, 2)
	require.Equal(t, 100.0, got.Checkout[0].TotalAmount)
}

func TestCreateInvoiceSequentialIDs(t *testing.T) {
	s := NewMemoryUserStore()
	user := newStoredUser(t, s)
	ctx := context.Background()
	address := models.BillingAddress{Name: "A", Address: "123 St"}

	require.NoError(t, s.PushCartItem(ctx, user.ID, models.CartItem{ItemID: "1"}))
	require.NoError(t, s.Checkout(ctx, user.ID, 50, time.Now()))
	require.NoError(t, s.Checkout(ctx, user.ID, 70, time.Now()))

	first, err := s.CreateInvoice(ctx, user.ID, address, "card", time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Len(t, first.Records, 2)

	got, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, got.Checkout)

	require.NoError(t, s.Checkout(ctx, user.ID, 30, time.Now()))
	second, err := s.CreateInvoice(ctx, user.ID, address, "card", time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
	require.Len(t, second.Records, 1)
}

func TestUserLookupsReturnCopies(t *testing.T) {
	s := NewMemoryUserStore()
	user := newStoredUser(t, s)
	ctx := context.Background()

	got, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	got.Cart = append(got.Cart, models.CartItem{ItemID: "rogue"})

	again, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, again.Cart)
}

func TestMemoryDataStoreByNumericIDs(t *testing.T) {
	s := NewMemoryDataStore([]models.Data{
		{ID: 1, Price: 500},
		{ID: 2, Price: 700},
		{ID: 3, Price: 900},
	})

	items, err := s.ByNumericIDs(context.Background(), []int{1, 3, 99})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].ID)
	require.Equal(t, 3, items[1].ID)
}
