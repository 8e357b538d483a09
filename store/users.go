package store

import (
	"context"

	"hungry-dine-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Users wraps the Users collection. Email is the unique key.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection(usersCollection)}
}

func (s *Users) All(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns (nil, nil) when no user matches; a missing record is
// an expected outcome, not an error.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, user)
}

func (s *Users) SetRole(ctx context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}
	return s.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
}

func (s *Users) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *Users) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.D{})
}
