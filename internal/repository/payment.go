package repository

import (
	"context"

	"building/internal/model"
	"building/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IPaymentRepository defines payment history persistence
type IPaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type PaymentRepository struct {
	base *generic.MongoBaseRepository[*model.Payment]
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{base: generic.NewBaseRepository[*model.Payment](db.Collection(PaymentsCollection))}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error) {
	return r.base.Create(ctx, payment)
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return r.base.Find(ctx, bson.M{"email": email})
}
