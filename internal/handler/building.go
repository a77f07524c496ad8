package handler

import (
	"log/slog"
	"net/http"

	"building/internal/model"

	"github.com/gin-gonic/gin"
)

// BuildingHandler serves apartments, announcements and coupons
type BuildingHandler struct {
	building BuildingService
	log      *slog.Logger
}

func NewBuildingHandler(building BuildingService, log *slog.Logger) *BuildingHandler {
	return &BuildingHandler{building: building, log: log}
}

// ListApartments handles GET /apartments
func (h *BuildingHandler) ListApartments(c *gin.Context) {
	apartments, err := h.building.ListApartments(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, apartments)
}

// ListAnnouncements handles GET /announcements
func (h *BuildingHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.building.ListAnnouncements(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /announcements
func (h *BuildingHandler) CreateAnnouncement(c *gin.Context) {
	var a model.Announcement
	if !bindJSON(c, &a) {
		return
	}
	res, err := h.building.CreateAnnouncement(c.Request.Context(), &a)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListCoupons handles GET /coupons
func (h *BuildingHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.building.ListCoupons(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// CreateCoupon handles POST /coupons
func (h *BuildingHandler) CreateCoupon(c *gin.Context) {
	var coupon model.Coupon
	if !bindJSON(c, &coupon) {
		return
	}
	res, err := h.building.CreateCoupon(c.Request.Context(), &coupon)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
