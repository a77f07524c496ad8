package service

import (
	"context"
	"fmt"

	"building/internal/model"
	"building/internal/repository"
)

// BuildingService serves the building-wide collections: apartments,
// announcements and coupons.
type BuildingService struct {
	apartments    repository.IDocumentRepository[*model.Apartment]
	announcements repository.IDocumentRepository[*model.Announcement]
	coupons       repository.IDocumentRepository[*model.Coupon]
}

func NewBuildingService(
	apartments repository.IDocumentRepository[*model.Apartment],
	announcements repository.IDocumentRepository[*model.Announcement],
	coupons repository.IDocumentRepository[*model.Coupon],
) *BuildingService {
	return &BuildingService{apartments: apartments, announcements: announcements, coupons: coupons}
}

func (s *BuildingService) ListApartments(ctx context.Context) ([]*model.Apartment, error) {
	return s.apartments.List(ctx)
}

func (s *BuildingService) ListAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	return s.announcements.List(ctx)
}

func (s *BuildingService) CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.InsertResult, error) {
	id, err := s.announcements.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *BuildingService) ListCoupons(ctx context.Context) ([]*model.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *BuildingService) CreateCoupon(ctx context.Context, c *model.Coupon) (*model.InsertResult, error) {
	id, err := s.coupons.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}
	return model.NewInsertResult(id), nil
}
