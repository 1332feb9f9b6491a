package service

import (
	"errors"
	"time"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrSeenNotFound = errors.New("Seen not found")
	ErrSeenExists   = errors.New("Seen already exists")
	ErrSeenTarget   = errors.New("Seen must target a movie or a book")
)

type SeenService struct {
	seenRepo  *repository.SeenRepository
	movieRepo *repository.MovieRepository
	bookRepo  *repository.BookRepository
}

func NewSeenService(seenRepo *repository.SeenRepository, movieRepo *repository.MovieRepository, bookRepo *repository.BookRepository) *SeenService {
	return &SeenService{seenRepo: seenRepo, movieRepo: movieRepo, bookRepo: bookRepo}
}

// Create 标记已看/已读。同一用户对同一目标只允许一条记录，
// 先查重快速失败，并发下由唯一索引兜底
func (s *SeenService) Create(current *dto.UserInfo, req *dto.SeenCreateRequest) (*dto.SeenInfo, error) {
	if err := s.checkTarget(req.MovieID, req.BookID); err != nil {
		return nil, err
	}

	exists, err := s.seenRepo.Exists(current.ID, req.MovieID, req.BookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSeenExists
	}

	seen := &model.Seen{
		UserID:  current.ID,
		MovieID: req.MovieID,
		BookID:  req.BookID,
	}
	if err := s.seenRepo.Create(seen); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSeenExists
		}
		return nil, err
	}
	return toSeenInfo(seen), nil
}

// Delete 取消标记，允许记录所有者或管理员操作
func (s *SeenService) Delete(id int64, current *dto.UserInfo) error {
	seen, err := s.seenRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeenNotFound
		}
		return err
	}
	if seen.UserID != current.ID && !current.IsAdmin {
		return ErrForbidden
	}

	deleted, err := s.seenRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSeenNotFound
	}
	return nil
}

// checkTarget 校验标记目标，恰好指向一部电影或一本图书且目标存在
func (s *SeenService) checkTarget(movieID, bookID *int64) error {
	if (movieID == nil) == (bookID == nil) {
		return ErrSeenTarget
	}
	if movieID != nil {
		if _, err := s.movieRepo.GetByID(*movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}
		return nil
	}
	if _, err := s.bookRepo.GetByID(*bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

func toSeenInfo(seen *model.Seen) *dto.SeenInfo {
	return &dto.SeenInfo{
		ID:      seen.ID,
		UserID:  seen.UserID,
		MovieID: seen.MovieID,
		BookID:  seen.BookID,
		SeenAt:  seen.SeenAt.Format(time.RFC3339),
	}
}
