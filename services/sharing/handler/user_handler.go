package handler

import (
	"net/http"

	model "gearshare/internal/models"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	CreateUser(name, email string) (model.User, error)
	UpdateUser(userID string, name, email *string) (model.User, error)
	GetUserByID(userID string) (model.User, error)
	GetAllUsers() ([]model.User, error)
	DeleteUser(userID string) error
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserHandler handles POST /users
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(req.Name, req.Email)
	if err != nil {
		helpers.RespondError(c, "CreateUserHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToUserResponse(user))
	helpers.LogSuccess("CreateUserHandler", "user created", map[string]any{"user_id": user.ID})
}

// UpdateUserHandler handles PATCH /users/:user_id
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}
	userID := c.Param("user_id")

	user, err := h.service.UpdateUser(userID, req.Name, req.Email)
	if err != nil {
		helpers.RespondError(c, "UpdateUserHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToUserResponse(user))
	helpers.LogSuccess("UpdateUserHandler", "user updated", map[string]any{"user_id": userID})
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, err := h.service.GetUserByID(c.Param("user_id"))
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err)
		return
	}
	c.JSON(http.StatusOK, helpers.ToUserResponse(user))
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		helpers.RespondError(c, "ListUsersHandler", err)
		return
	}
	resp := make([]helpers.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, helpers.ToUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUserHandler handles DELETE /users/:user_id
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.service.DeleteUser(userID); err != nil {
		helpers.RespondError(c, "DeleteUserHandler", err)
		return
	}
	c.Status(http.StatusOK)
	helpers.LogSuccess("DeleteUserHandler", "user deleted", map[string]any{"user_id": userID})
}
