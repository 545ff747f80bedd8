package models

// CartItem references a catalog item pending purchase.
type CartItem struct {
	ItemID string `bson:"itemId" json:"itemId"`
}
