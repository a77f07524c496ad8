package server

import (
	"log/slog"

	"building/internal/config"
	"building/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(cfg *config.Config, h *Handlers, reg *prometheus.Registry, log *slog.Logger) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	metrics := middleware.NewMetrics(reg)
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.AccessLog(log),
		metrics.Handler(),
	)

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	r.GET("/version", h.Health.Version)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("")
	api.Use(
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log),
		middleware.ContextTimeout(cfg.Mongo.Timeout),
	)

	// users
	api.GET("/users", h.User.List)
	api.POST("/users", h.User.Create)
	api.GET("/users/admin/:email", h.User.CheckAdmin)
	api.PATCH("/users/role/:email", h.User.MakeMember)
	api.PATCH("/users/admin/:id", h.User.MakeAdmin)
	api.PATCH("/member/:id", h.User.DemoteToUser)

	// apartments, announcements, coupons
	api.GET("/apartments", h.Building.ListApartments)
	api.GET("/announcements", h.Building.ListAnnouncements)
	api.POST("/announcements", h.Building.CreateAnnouncement)
	api.GET("/coupons", h.Building.ListCoupons)
	api.POST("/coupons", h.Building.CreateCoupon)

	// agreements
	api.GET("/agreements", h.Agreement.List)
	api.POST("/agreements", h.Agreement.Create)
	api.PATCH("/agreement/status/:id", h.Agreement.Accept)
	api.PATCH("/rejectAgreement/status/:id", h.Agreement.Reject)
	api.GET("/agreementInfo/:email", h.Agreement.GetInfo)
	api.POST("/agreementInfo", h.Agreement.CreateInfo)

	// payments
	api.POST("/create-payment-intent", h.Payment.CreateIntent)
	api.POST("/payments", h.Payment.Record)
	api.GET("/payments/:email", h.Payment.History)

	return r
}
