package server

import (
	"log/slog"

	"building/internal/config"
	"building/internal/gateway"
	"building/internal/handler"
	"building/internal/model"
	"building/internal/repository"
	"building/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	User          repository.IUserRepository
	Agreement     repository.IAgreementRepository
	AgreementInfo repository.IAgreementInfoRepository
	Payment       repository.IPaymentRepository
	Apartment     repository.IDocumentRepository[*model.Apartment]
	Announcement  repository.IDocumentRepository[*model.Announcement]
	Coupon        repository.IDocumentRepository[*model.Coupon]
}

type Services struct {
	User      *service.UserService
	Agreement *service.AgreementService
	Building  *service.BuildingService
	Payment   *service.PaymentService
}

type Handlers struct {
	Health    *handler.HealthHandler
	User      *handler.UserHandler
	Agreement *handler.AgreementHandler
	Building  *handler.BuildingHandler
	Payment   *handler.PaymentHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:          repository.NewUserRepository(db),
		Agreement:     repository.NewAgreementRepository(db),
		AgreementInfo: repository.NewAgreementInfoRepository(db),
		Payment:       repository.NewPaymentRepository(db),
		Apartment:     repository.NewDocumentRepository[*model.Apartment](db, repository.ApartmentsCollection),
		Announcement:  repository.NewDocumentRepository[*model.Announcement](db, repository.AnnouncementsCollection),
		Coupon:        repository.NewDocumentRepository[*model.Coupon](db, repository.CouponsCollection),
	}
}

func InitServices(cfg *config.Config, repos *Repositories, log *slog.Logger) *Services {
	if cfg.Stripe.SecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	return &Services{
		User:      service.NewUserService(repos.User, log),
		Agreement: service.NewAgreementService(repos.Agreement, repos.AgreementInfo, log),
		Building:  service.NewBuildingService(repos.Apartment, repos.Announcement, repos.Coupon),
		Payment:   service.NewPaymentService(repos.Payment, gateway.NewStripeGateway(cfg.Stripe.SecretKey), log),
	}
}

func InitHandlers(s *Services, db handler.Pinger, log *slog.Logger) *Handlers {
	return &Handlers{
		Health:    handler.NewHealthHandler(db),
		User:      handler.NewUserHandler(s.User, log),
		Agreement: handler.NewAgreementHandler(s.Agreement, log),
		Building:  handler.NewBuildingHandler(s.Building, log),
		Payment:   handler.NewPaymentHandler(s.Payment, log),
	}
}
