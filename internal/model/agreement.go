package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Agreement statuses
const (
	AgreementPending  = "pending"
	AgreementChecked  = "checked"
	AgreementRejected = "rejected"
)

// Agreement is a tenant's rental request for an apartment
type Agreement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserName    string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail   string             `bson:"userEmail" json:"userEmail" binding:"required,email"`
	FloorNo     int                `bson:"floorNo" json:"floorNo" binding:"gte=0"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	ApartmentNo string             `bson:"apartmentNo" json:"apartmentNo"`
	Rent        float64            `bson:"rent" json:"rent" binding:"gte=0"`
	Status      string             `bson:"status" json:"status" binding:"omitempty,oneof=pending checked rejected"`
	RequestDate string             `bson:"requestDate,omitempty" json:"requestDate,omitempty"`
}

func (a *Agreement) GetID() primitive.ObjectID   { return a.ID }
func (a *Agreement) SetID(id primitive.ObjectID) { a.ID = id }

// AgreementInfo is the accepted-agreement summary looked up by tenant email
type AgreementInfo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email" binding:"required,email"`
	UserName    string             `bson:"userName,omitempty" json:"userName,omitempty"`
	FloorNo     int                `bson:"floorNo" json:"floorNo" binding:"gte=0"`
	BlockName   string             `bson:"blockName" json:"blockName"`
	ApartmentNo string             `bson:"apartmentNo" json:"apartmentNo"`
	Rent        float64            `bson:"rent" json:"rent" binding:"gte=0"`
	AcceptDate  string             `bson:"acceptDate,omitempty" json:"acceptDate,omitempty"`
}

func (a *AgreementInfo) GetID() primitive.ObjectID   { return a.ID }
func (a *AgreementInfo) SetID(id primitive.ObjectID) { a.ID = id }
