package handler

import (
	"log/slog"
	"net/http"

	"building/internal/model"

	"github.com/gin-gonic/gin"
)

// AgreementHandler handles agreement and agreement-info endpoints
type AgreementHandler struct {
	agreements AgreementService
	log        *slog.Logger
}

func NewAgreementHandler(agreements AgreementService, log *slog.Logger) *AgreementHandler {
	return &AgreementHandler{agreements: agreements, log: log}
}

// List handles GET /agreements
func (h *AgreementHandler) List(c *gin.Context) {
	agreements, err := h.agreements.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, agreements)
}

// Create handles POST /agreements
func (h *AgreementHandler) Create(c *gin.Context) {
	var agreement model.Agreement
	if !bindJSON(c, &agreement) {
		return
	}
	res, err := h.agreements.Create(c.Request.Context(), &agreement)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Accept handles PATCH /agreement/status/:id
func (h *AgreementHandler) Accept(c *gin.Context) {
	res, err := h.agreements.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Reject handles PATCH /rejectAgreement/status/:id
func (h *AgreementHandler) Reject(c *gin.Context) {
	res, err := h.agreements.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetInfo handles GET /agreementInfo/:email. Responds null when absent.
func (h *AgreementHandler) GetInfo(c *gin.Context) {
	info, err := h.agreements.GetInfo(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// CreateInfo handles POST /agreementInfo
func (h *AgreementHandler) CreateInfo(c *gin.Context) {
	var info model.AgreementInfo
	if !bindJSON(c, &info) {
		return
	}
	res, err := h.agreements.CreateInfo(c.Request.Context(), &info)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
