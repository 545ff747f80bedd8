package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system. Cart, checkout history and invoices
// are embedded in the user document and owned by it exclusively.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	MobileNo          string             `bson:"mobileNo" json:"mobileNo"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password,omitempty" json:"-"`
	PasswordChangedAt time.Time          `bson:"passwordChangedAt,omitempty" json:"-"`
	Cart              []CartItem         `bson:"cart" json:"cart"`
	Checkout          []CheckoutRecord   `bson:"checkout" json:"checkout"`
	Invoices          []Invoice          `bson:"invoices" json:"invoices"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
