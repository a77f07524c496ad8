package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"building/internal/model"
	"building/internal/repository"
)

const (
	// PaymentCurrency is the only currency rent is charged in
	PaymentCurrency = "usd"
	minorUnits      = 100
)

// PaymentMethodTypes accepted for rent intents
var PaymentMethodTypes = []string{"card"}

// PaymentGateway creates payment intents at the external payment provider
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, methodTypes []string) (clientSecret string, err error)
}

// PaymentService handles payment intents and payment history
type PaymentService struct {
	repo    repository.IPaymentRepository
	gateway PaymentGateway
	log     *slog.Logger
}

func NewPaymentService(repo repository.IPaymentRepository, gateway PaymentGateway, log *slog.Logger) *PaymentService {
	return &PaymentService{repo: repo, gateway: gateway, log: log}
}

// ToMinorUnits converts an amount in dollars to cents
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * minorUnits))
}

// CreateIntent opens a card-only USD payment intent for rent and returns its
// client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, rent float64) (*model.PaymentIntentResponse, error) {
	amount := ToMinorUnits(rent)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: rent must be positive", ErrInvalidInput)
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, PaymentCurrency, PaymentMethodTypes)
	if err != nil {
		s.log.Error("payment intent failed", slog.Int64("amount", amount), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return &model.PaymentIntentResponse{ClientSecret: secret}, nil
}

// Record stores a completed payment
func (s *PaymentService) Record(ctx context.Context, payment *model.Payment) (*model.PaymentPostResponse, error) {
	id, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return &model.PaymentPostResponse{PaymentPost: model.NewInsertResult(id)}, nil
}

// History returns every payment made with email
func (s *PaymentService) History(ctx context.Context, email string) ([]*model.Payment, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	return s.repo.FindByEmail(ctx, email)
}
