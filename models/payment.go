package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one checkout. MenuIDs and CartIDs keep the hex form the
// client sent; nothing enforces that they still resolve later, joins that
// miss simply come back empty.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuIDs       []string           `bson:"menuIds" json:"menuIds"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// CategorySales is one row of the per-category revenue breakdown.
type CategorySales struct {
	Category     string  `bson:"category" json:"category"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	TotalRevenue float64 `bson:"totalRevenue" json:"totalRevenue"`
}
