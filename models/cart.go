package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem snapshots the chosen menu item so the cart renders without a
// join. Email is the owner key; carts are filtered by it, never by user id.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price,omitempty" json:"price,omitempty"`
}
