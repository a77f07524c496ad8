package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"building/internal/model"
	"building/internal/service"
	"building/pkg/util"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the request body into dst, writing a 400
// response and returning false when that fails.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", util.FormatValidationError(err)))
		return false
	}
	return true
}

// respondError maps service errors onto HTTP statuses. Store and other
// unexpected failures are logged and reported without their message.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid input", err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Not found", err.Error()))
	case errors.Is(err, service.ErrUpstream):
		log.Error("upstream failure", slog.String("path", c.FullPath()), slog.String("request_id", c.GetString("requestID")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, model.NewErrorResponse("Payment gateway error", ""))
	default:
		log.Error("request failed", slog.String("path", c.FullPath()), slog.String("request_id", c.GetString("requestID")), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", ""))
	}
}
