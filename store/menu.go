package store

import (
	"context"

	"hungry-dine-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Menu wraps the Menu collection.
type Menu struct {
	col *mongo.Collection
}

func NewMenu(db *mongo.Database) *Menu {
	return &Menu{col: db.Collection(menuCollection)}
}

func (s *Menu) All(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Menu) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var item models.MenuItem
	err = s.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs resolves a batch of hex ids. Ids that do not parse or do not
// match a document are dropped from the result.
func (s *Menu) FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error) {
	oids := toObjectIDs(ids)
	cur, err := s.col.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Menu) Insert(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, item)
}

// Update replaces exactly the recognized menu fields via $set.
func (s *Menu) Update(ctx context.Context, id string, upd models.MenuItemUpdate) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: upd}})
}

func (s *Menu) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *Menu) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.D{})
}
