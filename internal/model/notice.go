package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title" binding:"required,max=200"`
	Description string             `bson:"description" json:"description"`
}

func (a *Announcement) GetID() primitive.ObjectID   { return a.ID }
func (a *Announcement) SetID(id primitive.ObjectID) { a.ID = id }

type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code        string             `bson:"code" json:"code" binding:"required,max=50"`
	Discount    float64            `bson:"discount" json:"discount" binding:"gte=0,lte=100"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (c *Coupon) GetID() primitive.ObjectID   { return c.ID }
func (c *Coupon) SetID(id primitive.ObjectID) { c.ID = id }
