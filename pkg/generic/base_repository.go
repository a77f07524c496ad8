package generic

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when a lookup or update matched no document
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned for ids that are not ObjectID hex strings
	ErrInvalidID = errors.New("invalid id")
)

// BaseRepository Interface
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) (primitive.ObjectID, error)
	Find(ctx context.Context, filter bson.M) ([]T, error)
	FindOne(ctx context.Context, filter bson.M) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	SetFields(ctx context.Context, filter bson.M, fields bson.M) (*mongo.UpdateResult, error)
}

// MongoBaseRepository Implementation
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Create assigns a fresh ObjectID when the entity has none and inserts it
func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) (primitive.ObjectID, error) {
	if entity.GetID().IsZero() {
		entity.SetID(primitive.NewObjectID())
	}
	if _, err := r.Collection.InsertOne(ctx, entity); err != nil {
		return primitive.NilObjectID, err
	}
	return entity.GetID(), nil
}

// Find returns every document matching filter in natural order. A nil
// filter matches the whole collection. The result is never nil.
func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.Collection.Name(), err)
	}
	results := make([]T, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.Collection.Name(), err)
	}
	return results, nil
}

// FindOne returns the first document matching filter or ErrNotFound
func (r *MongoBaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity, ErrNotFound
		}
		return entity, fmt.Errorf("find one %s: %w", r.Collection.Name(), err)
	}
	return entity, nil
}

func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		var zero T
		return zero, ErrInvalidID
	}
	return r.FindOne(ctx, bson.M{"_id": objID})
}

// SetFields applies a $set of fields to the first document matching filter.
// A zero match is reported as ErrNotFound alongside the result.
func (r *MongoBaseRepository[T]) SetFields(ctx context.Context, filter bson.M, fields bson.M) (*mongo.UpdateResult, error) {
	res, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.Collection.Name(), err)
	}
	if res.MatchedCount == 0 {
		return res, ErrNotFound
	}
	return res, nil
}
