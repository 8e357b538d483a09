package store

import (
	"context"

	"hungry-dine-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Carts wraps the Carts collection.
type Carts struct {
	col *mongo.Collection
}

func NewCarts(db *mongo.Database) *Carts {
	return &Carts{col: db.Collection(cartsCollection)}
}

func (s *Carts) ByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Carts) Insert(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, item)
}

func (s *Carts) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// DeleteMany clears the cart rows paid for at checkout. Best effort by id
// list; ids that no longer exist just lower the deleted count.
func (s *Carts) DeleteMany(ctx context.Context, ids []string) (*mongo.DeleteResult, error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: toObjectIDs(ids)}}}}
	return s.col.DeleteMany(ctx, filter)
}
