package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-headphone-store/models"
)

// MongoUserStore is the MongoDB-backed UserStore. Cart, checkout history
// and invoices live inside the user document, so single-document update
// semantics give every mutation its atomicity.
type MongoUserStore struct {
	users *mongo.Collection
}

// NewMongoUserStore creates the store and ensures the unique email index.
func NewMongoUserStore(client *mongo.Client, database string) (*MongoUserStore, error) {
	users := client.Database(database).Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}

	return &MongoUserStore{users: users}, nil
}

// CreateUser inserts a new user and fills in the generated id.
func (s *MongoUserStore) CreateUser(ctx context.Context, user *models.User) error {
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoUserStore) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) UserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"mobileNo": mobile})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new password hash and the change timestamp.
func (s *MongoUserStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string, changedAt time.Time) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"password":          hash,
			"passwordChangedAt": changedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PushCartItem appends an item to the user's cart.
func (s *MongoUserStore) PushCartItem(ctx context.Context, id primitive.ObjectID, item models.CartItem) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"cart": item},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RemoveCartItem removes only the first cart entry matching the item id.
// The filter requires the item to be present, so a zero match count means
// the item was not in the cart.
func (s *MongoUserStore) RemoveCartItem(ctx context.Context, id primitive.ObjectID, itemID string) error {
	filter := bson.M{"_id": id, "cart.itemId": itemID}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		"cart": bson.M{"$let": bson.M{
			"vars": bson.M{
				"idx": bson.M{"$indexOfArray": bson.A{"$cart.itemId", bson.M{"$literal": itemID}}},
			},
			"in": bson.M{"$map": bson.M{
				"input": bson.M{"$filter": bson.M{
					"input": bson.M{"$range": bson.A{0, bson.M{"$size": "$cart"}}},
					"as":    "i",
					"cond":  bson.M{"$ne": bson.A{"$$i", "$$idx"}},
				}},
				"as": "i",
				"in": bson.M{"$arrayElemAt": bson.A{"$cart", "$$i"}},
			}},
		}},
	}}}}

	result, err := s.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearCart empties the user's cart unconditionally.
func (s *MongoUserStore) ClearCart(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"cart": bson.A{}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Checkout appends a snapshot of the current cart to the checkout history
// and empties the cart in one update.
func (s *MongoUserStore) Checkout(ctx context.Context, id primitive.ObjectID, totalAmount float64, at time.Time) error {
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		"checkout": bson.M{"$concatArrays": bson.A{
			bson.M{"$ifNull": bson.A{"$checkout", bson.A{}}},
			bson.A{bson.M{
				"items":       bson.M{"$ifNull": bson.A{"$cart", bson.A{}}},
				"totalAmount": totalAmount,
				"createdAt":   at,
			}},
		}},
		"cart": bson.A{},
	}}}}

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CreateInvoice bundles all pending checkout records into a new invoice and
// clears the checkout history in one update. The invoice id is the count of
// existing invoices plus one, computed inside the update.
func (s *MongoUserStore) CreateInvoice(ctx context.Context, id primitive.ObjectID, address models.BillingAddress, paymentOption string, at time.Time) (*models.Invoice, error) {
	existing := bson.M{"$ifNull": bson.A{"$invoices", bson.A{}}}
	update := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		"invoices": bson.M{"$concatArrays": bson.A{
			existing,
			bson.A{bson.M{
				"id":            bson.M{"$add": bson.A{bson.M{"$size": existing}, 1}},
				"records":       bson.M{"$ifNull": bson.A{"$checkout", bson.A{}}},
				"address":       bson.M{"$literal": address},
				"paymentOption": bson.M{"$literal": paymentOption},
				"createdAt":     at,
			}},
		}},
		"checkout": bson.A{},
	}}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	invoice := user.Invoices[len(user.Invoices)-1]
	return &invoice, nil
}

// MongoDataStore is the MongoDB-backed catalog store.
type MongoDataStore struct {
	data *mongo.Collection
}

// NewMongoDataStore creates a catalog store over the "data" collection.
func NewMongoDataStore(client *mongo.Client, database string) *MongoDataStore {
	return &MongoDataStore{
		data: client.Database(database).Collection("data"),
	}
}

// All returns every catalog item.
func (s *MongoDataStore) All(ctx context.Context) ([]models.Data, error) {
	cursor, err := s.data.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Data{}
	for cursor.Next(ctx) {
		var item models.Data
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ByNumericIDs returns the catalog items whose numeric ids are listed.
func (s *MongoDataStore) ByNumericIDs(ctx context.Context, ids []int) ([]models.Data, error) {
	cursor, err := s.data.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Data{}
	for cursor.Next(ctx) {
		var item models.Data
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
