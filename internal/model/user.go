package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles. An empty role is an implicit RoleUser.
const (
	RoleUser   = "user"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty" binding:"max=100"`
	Email string             `bson:"email" json:"email" binding:"required,email,max=254"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty" binding:"omitempty,oneof=user member admin"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// IsAdmin reports whether the user carries the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// AdminStatus is the response of the admin check endpoint
type AdminStatus struct {
	Admin bool `json:"admin"`
}
