package models

import "time"

// CheckoutRecord is an immutable snapshot of the cart taken at checkout
// time. Records accumulate on the user until they are invoiced.
type CheckoutRecord struct {
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"totalAmount" json:"totalAmount"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}
