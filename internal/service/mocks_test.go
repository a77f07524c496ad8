package service

import (
	"context"
	"io"
	"log/slog"

	"building/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) SetRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

type MockAgreementRepository struct {
	mock.Mock
}

func (m *MockAgreementRepository) List(ctx context.Context) ([]*model.Agreement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Agreement), args.Error(1)
}

func (m *MockAgreementRepository) Create(ctx context.Context, a *model.Agreement) (primitive.ObjectID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockAgreementRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

type MockAgreementInfoRepository struct {
	mock.Mock
}

func (m *MockAgreementInfoRepository) Create(ctx context.Context, info *model.AgreementInfo) (primitive.ObjectID, error) {
	args := m.Called(ctx, info)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockAgreementInfoRepository) FindByEmail(ctx context.Context, email string) (*model.AgreementInfo, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgreementInfo), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *model.Payment) (primitive.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPaymentRepository) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, methodTypes []string) (string, error) {
	args := m.Called(ctx, amount, currency, methodTypes)
	return args.String(0), args.Error(1)
}

// memDocs is an in-memory document repository used for round-trip checks
type memDocs[T interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}] struct {
	docs []T
}

func (r *memDocs[T]) List(context.Context) ([]T, error) {
	out := make([]T, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

func (r *memDocs[T]) Create(_ context.Context, doc T) (primitive.ObjectID, error) {
	if doc.GetID().IsZero() {
		doc.SetID(primitive.NewObjectID())
	}
	r.docs = append(r.docs, doc)
	return doc.GetID(), nil
}
