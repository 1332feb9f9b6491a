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

type BookHandler struct {
	bookService   *service.BookService
	searchService *service.SearchService
}

func NewBookHandler(bookService *service.BookService, searchService *service.SearchService) *BookHandler {
	return &BookHandler{bookService: bookService, searchService: searchService}
}

// List GET /api/v1/books?page=
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(parsePage(c))
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Books retrieved successfully", books)
}

// GetByID GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var viewerID *int64
	if user, ok := middleware.GetCurrentUser(c); ok {
		viewerID = &user.ID
	}

	detail, err := h.bookService.GetDetail(bookID, viewerID)
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Book retrieved successfully", detail)
}

// Search GET /api/v1/books/search?title=
func (h *BookHandler) Search(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		response.BadRequest(c, "Missing title query parameter")
		return
	}

	books, err := h.searchService.SearchBooks(title)
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Books retrieved successfully", books)
}

// ListByGenre GET /api/v1/books/genre?genre=&page=
func (h *BookHandler) ListByGenre(c *gin.Context) {
	genre := strings.TrimSpace(c.Query("genre"))
	if genre == "" {
		response.BadRequest(c, "Missing genre query parameter")
		return
	}

	books, err := h.bookService.ListByGenre(genre, parsePage(c))
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Books retrieved successfully", books)
}

// Create POST /api/v1/books （管理员）
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.bookService.Create(&req)
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.Created(c, "Book created successfully", book)
}

// Update PATCH /api/v1/books/:id （管理员）
func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req dto.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.bookService.Modify(bookID, &req)
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Book updated successfully", book)
}

// UploadCover POST /api/v1/books/:id/cover （管理员，multipart 字段 cover）
func (h *BookHandler) UploadCover(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	url, err := saveCoverUpload(c, "books", bookID)
	if err != nil {
		logger.Error("Cover upload failed", zap.Int64("book_id", bookID), zap.Error(err))
		response.BadRequest(c, "Cover upload failed")
		return
	}

	book, err := h.bookService.Modify(bookID, &dto.BookUpdateRequest{CoverImage: &url})
	if err != nil {
		handleBookError(c, err)
		return
	}
	response.OK(c, "Cover uploaded successfully", book)
}

// Delete DELETE /api/v1/books/:id （管理员）
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.bookService.Delete(bookID); err != nil {
		handleBookError(c, err)
		return
	}
	response.NoContent(c)
}

func handleBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Book operation failed", zap.Error(err))
		response.InternalError(c, "Operation failed, please try again later")
	}
}
