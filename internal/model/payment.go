package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is a completed rent payment as reported by the client after the
// gateway confirmed the intent.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Rent          float64            `bson:"rent" json:"rent" binding:"gte=0"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty" binding:"gte=0"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Month         string             `bson:"month,omitempty" json:"month,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}

func (p *Payment) GetID() primitive.ObjectID   { return p.ID }
func (p *Payment) SetID(id primitive.ObjectID) { p.ID = id }

// PaymentIntentRequest carries the rent to charge, in major currency units
type PaymentIntentRequest struct {
	Rent float64 `json:"rent" binding:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentPostResponse wraps the insert acknowledgement of a recorded payment
type PaymentPostResponse struct {
	PaymentPost *InsertResult `json:"paymentPost"`
}
