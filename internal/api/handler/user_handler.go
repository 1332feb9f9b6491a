package handler

import (
	"errors"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/api/middleware"
	"seekreviews/internal/api/response"
	"seekreviews/internal/service"
	"seekreviews/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List GET /api/v1/users （管理员）
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Users retrieved successfully", users)
}

// GetByID GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", user)
}

// Favorites GET /api/v1/users/:id/favorites
func (h *UserHandler) Favorites(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	favorites, err := h.userService.FavoritesOf(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Favorites retrieved successfully", favorites)
}

// Seen GET /api/v1/users/:id/seen
func (h *UserHandler) Seen(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	seen, err := h.userService.SeenOf(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Seen list retrieved successfully", seen)
}

// Update PATCH /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	user, err := h.userService.Update(userID, current, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "User updated successfully", user)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	if err := h.userService.Delete(userID, current); err != nil {
		handleUserError(c, err)
		return
	}
	response.NoContent(c)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUsernameExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrPasswordTooShort):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
