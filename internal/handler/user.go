package handler

import (
	"log/slog"
	"net/http"

	"building/internal/model"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user registration and role endpoints
type UserHandler struct {
	users UserService
	log   *slog.Logger
}

// NewUserHandler creates a new User handler
func NewUserHandler(users UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /users. A taken email answers 200 with the
// "user already exists" message and a null insertedId.
func (h *UserHandler) Create(c *gin.Context) {
	var user model.User
	if !bindJSON(c, &user) {
		return
	}

	res, err := h.users.Create(c.Request.Context(), &user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckAdmin handles GET /users/admin/:email
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	status, err := h.users.CheckAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// MakeMember handles PATCH /users/role/:email
func (h *UserHandler) MakeMember(c *gin.Context) {
	res, err := h.users.MakeMember(c.Request.Context(), c.Param("email"))
	h.update(c, res, err)
}

// MakeAdmin handles PATCH /users/admin/:id
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	res, err := h.users.MakeAdmin(c.Request.Context(), c.Param("id"))
	h.update(c, res, err)
}

// DemoteToUser handles PATCH /member/:id
func (h *UserHandler) DemoteToUser(c *gin.Context) {
	res, err := h.users.DemoteToUser(c.Request.Context(), c.Param("id"))
	h.update(c, res, err)
}

func (h *UserHandler) update(c *gin.Context, res *model.UpdateResult, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
