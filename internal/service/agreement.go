package service

import (
	"context"
	"fmt"
	"log/slog"

	"building/internal/model"
	"building/internal/repository"
)

// AgreementService handles rental agreements and accepted-agreement info
type AgreementService struct {
	agreements repository.IAgreementRepository
	infos      repository.IAgreementInfoRepository
	log        *slog.Logger
}

func NewAgreementService(agreements repository.IAgreementRepository, infos repository.IAgreementInfoRepository, log *slog.Logger) *AgreementService {
	return &AgreementService{agreements: agreements, infos: infos, log: log}
}

func (s *AgreementService) List(ctx context.Context) ([]*model.Agreement, error) {
	return s.agreements.List(ctx)
}

// Create stores a new agreement; an empty status starts as pending
func (s *AgreementService) Create(ctx context.Context, agreement *model.Agreement) (*model.InsertResult, error) {
	if agreement.Status == "" {
		agreement.Status = model.AgreementPending
	}
	id, err := s.agreements.Create(ctx, agreement)
	if err != nil {
		return nil, fmt.Errorf("create agreement: %w", err)
	}
	return model.NewInsertResult(id), nil
}

// Accept marks the agreement checked regardless of its current status
func (s *AgreementService) Accept(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.setStatus(ctx, id, model.AgreementChecked)
}

// Reject marks the agreement rejected regardless of its current status
func (s *AgreementService) Reject(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.setStatus(ctx, id, model.AgreementRejected)
}

func (s *AgreementService) setStatus(ctx context.Context, id, status string) (*model.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := toUpdateResult(s.agreements.SetStatus(ctx, objID, status))
	if err != nil {
		return nil, err
	}
	s.log.Info("agreement status updated", slog.String("id", id), slog.String("status", status))
	return res, nil
}

func (s *AgreementService) CreateInfo(ctx context.Context, info *model.AgreementInfo) (*model.InsertResult, error) {
	id, err := s.infos.Create(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("create agreement info: %w", err)
	}
	return model.NewInsertResult(id), nil
}

// GetInfo returns the agreement info stored for email, or nil if there is none
func (s *AgreementService) GetInfo(ctx context.Context, email string) (*model.AgreementInfo, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	return s.infos.FindByEmail(ctx, email)
}
