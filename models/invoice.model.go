package models

import "time"

// BillingAddress holds the billing details attached to an invoice.
type BillingAddress struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
}

// Invoice aggregates all checkout records pending at creation time.
// Ids are per-user, start at 1 and are strictly increasing.
type Invoice struct {
	ID            int              `bson:"id" json:"id"`
	Records       []CheckoutRecord `bson:"records" json:"records"`
	Address       BillingAddress   `bson:"address" json:"address"`
	PaymentOption string           `bson:"paymentOption" json:"paymentOption"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
}
