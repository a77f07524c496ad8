package repository

import (
	"context"

	"building/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IDocumentRepository is the list/insert surface shared by the free-form
// collections (apartments, announcements, coupons).
type IDocumentRepository[T generic.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, doc T) (primitive.ObjectID, error)
}

type DocumentRepository[T generic.Entity] struct {
	base *generic.MongoBaseRepository[T]
}

func NewDocumentRepository[T generic.Entity](db *mongo.Database, collection string) IDocumentRepository[T] {
	return &DocumentRepository[T]{base: generic.NewBaseRepository[T](db.Collection(collection))}
}

func (r *DocumentRepository[T]) List(ctx context.Context) ([]T, error) {
	return r.base.Find(ctx, nil)
}

func (r *DocumentRepository[T]) Create(ctx context.Context, doc T) (primitive.ObjectID, error) {
	return r.base.Create(ctx, doc)
}
