package service

import (
	"errors"
	"time"

	"seekreviews/internal/api/dto"
	infraKafka "seekreviews/internal/infra/kafka"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"

	"gorm.io/gorm"
)

var ErrBookNotFound = errors.New("Book not found")

type BookService struct {
	bookRepo *repository.BookRepository
	seenRepo *repository.SeenRepository
}

func NewBookService(bookRepo *repository.BookRepository, seenRepo *repository.SeenRepository) *BookService {
	return &BookService{bookRepo: bookRepo, seenRepo: seenRepo}
}

// List 分页获取书籍列表
func (s *BookService) List(page int) ([]dto.BookInfo, error) {
	if page < 1 {
		page = 1
	}
	books, err := s.bookRepo.List((page-1)*catalogPageSize, catalogPageSize)
	if err != nil {
		return nil, err
	}
	return toBookInfos(books), nil
}

// GetDetail 获取书籍详情，登录用户附带阅读状态
func (s *BookService) GetDetail(id int64, viewerID *int64) (*dto.BookDetail, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	detail := &dto.BookDetail{BookInfo: *toBookInfo(book)}
	if viewerID != nil {
		seen, err := s.seenRepo.FindByViewerAndBook(*viewerID, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if seen != nil {
			detail.IsSeen = true
			detail.SeenID = &seen.ID
		}
	}
	return detail, nil
}

// ListByGenre 按类型分页获取书籍
func (s *BookService) ListByGenre(genre string, page int) ([]dto.BookInfo, error) {
	if page < 1 {
		page = 1
	}
	books, err := s.bookRepo.ListByGenre(genre, (page-1)*catalogPageSize, catalogPageSize)
	if err != nil {
		return nil, err
	}
	return toBookInfos(books), nil
}

// Create 创建书籍（管理员）
func (s *BookService) Create(req *dto.BookCreateRequest) (*dto.BookInfo, error) {
	publishDate, err := time.Parse("2006-01-02", req.PublishDate)
	if err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		PublishDate: publishDate,
		Genre:       req.Genre,
		CoverImage:  req.CoverImage,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}

	publishCatalogEvent(infraKafka.EntityBook, book.ID, infraKafka.ActionUpsert)
	return toBookInfo(book), nil
}

// Modify 更新书籍信息（管理员）
func (s *BookService) Modify(id int64, req *dto.BookUpdateRequest) (*dto.BookInfo, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.PublishDate != nil {
		publishDate, err := time.Parse("2006-01-02", *req.PublishDate)
		if err != nil {
			return nil, err
		}
		updates["publish_date"] = publishDate
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	book, err := s.bookRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	publishCatalogEvent(infraKafka.EntityBook, book.ID, infraKafka.ActionUpsert)
	return toBookInfo(book), nil
}

// Delete 删除书籍及其级联数据（管理员）
func (s *BookService) Delete(id int64) error {
	deleted, err := s.bookRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	publishCatalogEvent(infraKafka.EntityBook, id, infraKafka.ActionDelete)
	return nil
}

func toBookInfo(b *model.Book) *dto.BookInfo {
	return &dto.BookInfo{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Author:      b.Author,
		PublishDate: b.PublishDate.Format("2006-01-02"),
		Genre:       b.Genre,
		CoverImage:  b.CoverImage,
		AvgRating:   b.AvgRating,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func toBookInfos(books []model.Book) []dto.BookInfo {
	infos := make([]dto.BookInfo, 0, len(books))
	for i := range books {
		infos = append(infos, *toBookInfo(&books[i]))
	}
	return infos
}
