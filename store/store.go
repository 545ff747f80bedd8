// Package store persists user identity records and commerce state, and
// exposes the read-only catalog.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-headphone-store/models"
)

var (
	// ErrUserExists is returned when a signup collides with an existing email.
	ErrUserExists = errors.New("user with this email already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound is returned when a cart mutation targets an absent item.
	ErrItemNotFound = errors.New("item not found in the cart")
)

// UserStore persists users and their embedded commerce state. Every
// mutation is atomic with respect to the user document: checkout and
// invoice creation move data between the embedded collections in a single
// update, so a reader never observes a partial transition.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByMobile(ctx context.Context, mobile string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string, changedAt time.Time) error

	PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) error
	RemoveCartItem(ctx context.Context, id primitive.ObjectID, itemID string) error
	ClearCart(ctx context.Context, id primitive.ObjectID) error

	Checkout(ctx context.Context, id primitive.ObjectID, totalAmount float64, at time.Time) error
	CreateInvoice(ctx context.Context, id primitive.ObjectID, address models.BillingAddress, paymentOption string, at time.Time) (*models.Invoice, error)
}

// DataStore is the queryable catalog collaborator.
type DataStore interface {
	All(ctx context.Context) ([]models.Data, error)
	ByNumericIDs(ctx context.Context, ids []int) ([]models.Data, error)
}
