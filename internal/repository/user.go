package repository

import (
	"context"
	"errors"
	"fmt"

	"building/internal/model"
	"building/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when a user with the same email exists
var ErrDuplicateEmail = errors.New("email already registered")

// IUserRepository defines user persistence
type IUserRepository interface {
	EnsureIndexes(ctx context.Context) error
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
}

// UserRepository implements user persistence
type UserRepository struct {
	base *generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{base: generic.NewBaseRepository[*model.User](db.Collection(UsersCollection))}
}

// EnsureIndexes creates the unique index on email that backs the
// duplicate-user guard.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.base.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	return r.base.Find(ctx, nil)
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	id, err := r.base.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// FindByEmail returns nil, nil when no user has the email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.base.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.base.SetFields(ctx, bson.M{"email": email}, bson.M{"role": role})
}

func (r *UserRepository) SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return r.base.SetFields(ctx, bson.M{"_id": id}, bson.M{"role": role})
}
