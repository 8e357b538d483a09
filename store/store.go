// Package store wraps the Mongo collections backing the API. Every method
// is a single driver call; write and delete methods hand the driver's raw
// result structs back so handlers can expose them unmodified.
package store

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	usersCollection    = "Users"
	menuCollection     = "Menu"
	reviewsCollection  = "Reviews"
	cartsCollection    = "Carts"
	paymentsCollection = "Payments"
)

// toObjectIDs converts hex ids, skipping any that do not parse. Callers
// treat an unresolvable id as a miss, never as an error.
func toObjectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return oids
}
