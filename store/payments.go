package store

import (
	"context"

	"hungry-dine-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Payments wraps the Payments collection and owns the two reporting
// pipelines run against it.
type Payments struct {
	col *mongo.Collection
}

func NewPayments(db *mongo.Database) *Payments {
	return &Payments{col: db.Collection(paymentsCollection)}
}

func (s *Payments) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Payments) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var payment models.Payment
	err = s.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Payments) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, payment)
}

func (s *Payments) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.D{})
}

// TotalRevenue sums price across every payment, 0 when there are none.
func (s *Payments) TotalRevenue(ctx context.Context) (float64, error) {
	cur, err := s.col.Aggregate(ctx, revenuePipeline())
	if err != nil {
		return 0, err
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

// CategorySales groups every purchased line item by menu category. Menu ids
// that no longer resolve fall out at the post-lookup unwind.
func (s *Payments) CategorySales(ctx context.Context) ([]models.CategorySales, error) {
	cur, err := s.col.Aggregate(ctx, categorySalesPipeline())
	if err != nil {
		return nil, err
	}
	var rows []models.CategorySales
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// categorySalesPipeline expands each payment's menuIds, joins the Menu
// collection and groups by category. $convert with onError:null keeps a
// malformed id from aborting the whole pipeline; it just never joins.
func categorySalesPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuIds"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "menuObjectId", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$menuIds"},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "localField", Value: "menuObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "totalRevenue", Value: 1},
		}}},
	}
}
