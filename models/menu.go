package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}

// MenuItemUpdate carries the only fields a menu PATCH may touch. Anything
// else on the stored document is left alone.
type MenuItemUpdate struct {
	Name     string  `bson:"name" json:"name"`
	Recipe   string  `bson:"recipe" json:"recipe"`
	Image    string  `bson:"image" json:"image"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
}
