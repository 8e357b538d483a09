package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole defines allowed roles in the system. Most accounts never set a
// role at all; only admins carry one that matters.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  UserRole           `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin is nil-safe so a lookup miss reads as a plain non-admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
