package store

import (
	"context"

	"hungry-dine-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reviews wraps the Reviews collection. The API only ever reads it.
type Reviews struct {
	col *mongo.Collection
}

func NewReviews(db *mongo.Database) *Reviews {
	return &Reviews{col: db.Collection(reviewsCollection)}
}

func (s *Reviews) All(ctx context.Context) ([]models.Review, error) {
	cur, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
