package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is read-only through this API; documents are seeded out of band.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}
