package handler

import (
	"errors"
	"strconv"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/api/middleware"
	"seekreviews/internal/api/response"
	"seekreviews/internal/service"
	"seekreviews/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Create POST /api/v1/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	info, err := h.ratingService.Create(current, &req)
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.Created(c, "Rating created successfully", info)
}

// Update PUT|PATCH /api/v1/ratings/:id
func (h *RatingHandler) Update(c *gin.Context) {
	ratingID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid rating ID")
		return
	}

	var req dto.RatingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	info, err := h.ratingService.Modify(ratingID, current, &req)
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.OK(c, "Rating updated successfully", info)
}

// Delete DELETE /api/v1/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	ratingID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid rating ID")
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	if err := h.ratingService.Delete(ratingID, current); err != nil {
		handleRatingError(c, err)
		return
	}
	response.NoContent(c)
}

// ListByMovie GET /api/v1/ratings/movie?movie_id=
func (h *RatingHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Query("movie_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	ratings, err := h.ratingService.ListByMovie(movieID)
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.OK(c, "Ratings retrieved successfully", ratings)
}

// ListByBook GET /api/v1/ratings/book?book_id=
func (h *RatingHandler) ListByBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Query("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	ratings, err := h.ratingService.ListByBook(bookID)
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.OK(c, "Ratings retrieved successfully", ratings)
}

// ListByUser GET /api/v1/ratings/user?user_id=
func (h *RatingHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	ratings, err := h.ratingService.ListByUser(userID)
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.OK(c, "Ratings retrieved successfully", ratings)
}

func handleRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRatingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrRatingExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrRatingTarget):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Rating operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
