package repository

import (
	"context"
	"errors"

	"building/internal/model"
	"building/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IAgreementRepository defines agreement persistence
type IAgreementRepository interface {
	List(ctx context.Context) ([]*model.Agreement, error)
	Create(ctx context.Context, agreement *model.Agreement) (primitive.ObjectID, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
}

type AgreementRepository struct {
	base *generic.MongoBaseRepository[*model.Agreement]
}

func NewAgreementRepository(db *mongo.Database) IAgreementRepository {
	return &AgreementRepository{base: generic.NewBaseRepository[*model.Agreement](db.Collection(AgreementsCollection))}
}

func (r *AgreementRepository) List(ctx context.Context) ([]*model.Agreement, error) {
	return r.base.Find(ctx, nil)
}

func (r *AgreementRepository) Create(ctx context.Context, agreement *model.Agreement) (primitive.ObjectID, error) {
	return r.base.Create(ctx, agreement)
}

func (r *AgreementRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.base.SetFields(ctx, bson.M{"_id": id}, bson.M{"status": status})
}

// IAgreementInfoRepository defines agreement-info persistence
type IAgreementInfoRepository interface {
	Create(ctx context.Context, info *model.AgreementInfo) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.AgreementInfo, error)
}

type AgreementInfoRepository struct {
	base *generic.MongoBaseRepository[*model.AgreementInfo]
}

func NewAgreementInfoRepository(db *mongo.Database) IAgreementInfoRepository {
	return &AgreementInfoRepository{base: generic.NewBaseRepository[*model.AgreementInfo](db.Collection(AgreementInfoCollection))}
}

func (r *AgreementInfoRepository) Create(ctx context.Context, info *model.AgreementInfo) (primitive.ObjectID, error) {
	return r.base.Create(ctx, info)
}

// FindByEmail returns nil, nil when nothing is stored for email
func (r *AgreementInfoRepository) FindByEmail(ctx context.Context, email string) (*model.AgreementInfo, error) {
	info, err := r.base.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}
