package handler

import (
	"context"

	"building/internal/model"
)

// UserService is the user surface the handlers depend on
type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.UserInsertResult, error)
	CheckAdmin(ctx context.Context, email string) (*model.AdminStatus, error)
	MakeMember(ctx context.Context, email string) (*model.UpdateResult, error)
	MakeAdmin(ctx context.Context, id string) (*model.UpdateResult, error)
	DemoteToUser(ctx context.Context, id string) (*model.UpdateResult, error)
}

// AgreementService is the agreement surface the handlers depend on
type AgreementService interface {
	List(ctx context.Context) ([]*model.Agreement, error)
	Create(ctx context.Context, agreement *model.Agreement) (*model.InsertResult, error)
	Accept(ctx context.Context, id string) (*model.UpdateResult, error)
	Reject(ctx context.Context, id string) (*model.UpdateResult, error)
	CreateInfo(ctx context.Context, info *model.AgreementInfo) (*model.InsertResult, error)
	GetInfo(ctx context.Context, email string) (*model.AgreementInfo, error)
}

// BuildingService is the apartment/announcement/coupon surface
type BuildingService interface {
	ListApartments(ctx context.Context) ([]*model.Apartment, error)
	ListAnnouncements(ctx context.Context) ([]*model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.InsertResult, error)
	ListCoupons(ctx context.Context) ([]*model.Coupon, error)
	CreateCoupon(ctx context.Context, c *model.Coupon) (*model.InsertResult, error)
}

// PaymentService is the payment surface the handlers depend on
type PaymentService interface {
	CreateIntent(ctx context.Context, rent float64) (*model.PaymentIntentResponse, error)
	Record(ctx context.Context, payment *model.Payment) (*model.PaymentPostResponse, error)
	History(ctx context.Context, email string) ([]*model.Payment, error)
}

// Pinger checks the document store connection
type Pinger interface {
	Ping(ctx context.Context) error
}
