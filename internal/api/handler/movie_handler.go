package handler

import (
	"errors"
	"strings"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/api/middleware"
	"seekreviews/internal/api/response"
	"seekreviews/internal/service"
	"seekreviews/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MovieHandler struct {
	movieService  *service.MovieService
	searchService *service.SearchService
}

func NewMovieHandler(movieService *service.MovieService, searchService *service.SearchService) *MovieHandler {
	return &MovieHandler{movieService: movieService, searchService: searchService}
}

// List GET /api/v1/movies?page=
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.List(parsePage(c))
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Movies retrieved successfully", movies)
}

// GetByID GET /api/v1/movies/:id
func (h *MovieHandler) GetByID(c *gin.Context) {
	movieID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	var viewerID *int64
	if user, ok := middleware.GetCurrentUser(c); ok {
		viewerID = &user.ID
	}

	detail, err := h.movieService.GetDetail(movieID, viewerID)
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Movie retrieved successfully", detail)
}

// Search GET /api/v1/movies/search?title=
func (h *MovieHandler) Search(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		response.BadRequest(c, "Missing title query parameter")
		return
	}

	movies, err := h.searchService.SearchMovies(title)
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Movies retrieved successfully", movies)
}

// ListByGenre GET /api/v1/movies/genre?genre=&page=
func (h *MovieHandler) ListByGenre(c *gin.Context) {
	genre := strings.TrimSpace(c.Query("genre"))
	if genre == "" {
		response.BadRequest(c, "Missing genre query parameter")
		return
	}

	movies, err := h.movieService.ListByGenre(genre, parsePage(c))
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Movies retrieved successfully", movies)
}

// Create POST /api/v1/movies （管理员）
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.MovieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	movie, err := h.movieService.Create(&req)
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.Created(c, "Movie created successfully", movie)
}

// Update PATCH /api/v1/movies/:id （管理员）
func (h *MovieHandler) Update(c *gin.Context) {
	movieID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	var req dto.MovieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	movie, err := h.movieService.Modify(movieID, &req)
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Movie updated successfully", movie)
}

// UploadCover POST /api/v1/movies/:id/cover （管理员，multipart 字段 cover）
func (h *MovieHandler) UploadCover(c *gin.Context) {
	movieID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	url, err := saveCoverUpload(c, "movies", movieID)
	if err != nil {
		logger.Error("Cover upload failed", zap.Int64("movie_id", movieID), zap.Error(err))
		response.BadRequest(c, "Cover upload failed")
		return
	}

	movie, err := h.movieService.Modify(movieID, &dto.MovieUpdateRequest{CoverImage: &url})
	if err != nil {
		handleMovieError(c, err)
		return
	}
	response.OK(c, "Cover uploaded successfully", movie)
}

// Delete DELETE /api/v1/movies/:id （管理员）
func (h *MovieHandler) Delete(c *gin.Context) {
	movieID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid movie ID")
		return
	}

	if err := h.movieService.Delete(movieID); err != nil {
		handleMovieError(c, err)
		return
	}
	response.NoContent(c)
}

func handleMovieError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Movie operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
