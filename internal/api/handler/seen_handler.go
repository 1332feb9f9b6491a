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

type SeenHandler struct {
	seenService *service.SeenService
}

func NewSeenHandler(seenService *service.SeenService) *SeenHandler {
	return &SeenHandler{seenService: seenService}
}

// Create POST /api/v1/seen
func (h *SeenHandler) Create(c *gin.Context) {
	var req dto.SeenCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	info, err := h.seenService.Create(current, &req)
	if err != nil {
		handleSeenError(c, err)
		return
	}
	response.Created(c, "Seen created successfully", info)
}

// Delete DELETE /api/v1/seen/:id
func (h *SeenHandler) Delete(c *gin.Context) {
	seenID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid seen ID")
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	if err := h.seenService.Delete(seenID, current); err != nil {
		handleSeenError(c, err)
		return
	}
	response.NoContent(c)
}

func handleSeenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeenNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSeenExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrSeenTarget):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Seen operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
