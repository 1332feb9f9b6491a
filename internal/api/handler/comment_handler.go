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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	info, err := h.commentService.Create(current, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.Created(c, "Comment created successfully", info)
}

// Update PUT|PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	info, err := h.commentService.Modify(commentID, current, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "Comment updated successfully", info)
}

// Delete DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	current, _ := middleware.GetCurrentUser(c)

	if err := h.commentService.Delete(commentID, current); err != nil {
		handleCommentError(c, err)
		return
	}
	response.NoContent(c)
}

// ListByMovie GET /api/v1/comments/movie?movie_id=
func (h *CommentHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Query("movie_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	comments, err := h.commentService.ListByMovie(movieID)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "Comments retrieved successfully", comments)
}

// ListByBook GET /api/v1/comments/book?book_id=
func (h *CommentHandler) ListByBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Query("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	comments, err := h.commentService.ListByBook(bookID)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "Comments retrieved successfully", comments)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentTarget):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
