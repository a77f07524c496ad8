package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Apartment is seeded outside this API and only ever read.
type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	FloorNo     int                `bson:"floorNo" json:"floorNo"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	ApartmentNo string             `bson:"apartmentNo" json:"apartmentNo"`
	Rent        float64            `bson:"rent" json:"rent"`
}

func (a *Apartment) GetID() primitive.ObjectID   { return a.ID }
func (a *Apartment) SetID(id primitive.ObjectID) { a.ID = id }
