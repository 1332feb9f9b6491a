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
	ErrRatingNotFound = errors.New("Rating not found")
	ErrRatingExists   = errors.New("Rating already exists")
	ErrRatingTarget   = errors.New("Rating must target a movie or a book")
)

type RatingService struct {
	ratingRepo *repository.RatingRepository
	movieRepo  *repository.MovieRepository
	bookRepo   *repository.BookRepository
	userRepo   *repository.UserRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository, movieRepo *repository.MovieRepository, bookRepo *repository.BookRepository, userRepo *repository.UserRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, movieRepo: movieRepo, bookRepo: bookRepo, userRepo: userRepo}
}

// Create 打分。同一用户对同一目标只允许一条评分，
// 先查重快速失败，并发下由唯一索引兜底
func (s *RatingService) Create(current *dto.UserInfo, req *dto.RatingCreateRequest) (*dto.RatingInfo, error) {
	if err := s.checkTarget(req.MovieID, req.BookID); err != nil {
		return nil, err
	}

	exists, err := s.ratingRepo.Exists(current.ID, req.MovieID, req.BookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRatingExists
	}

	rating := &model.Rating{
		UserID:  current.ID,
		MovieID: req.MovieID,
		BookID:  req.BookID,
		Rating:  req.Rating,
	}
	if err := s.ratingRepo.CreateWithRecompute(rating); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRatingExists
		}
		return nil, err
	}
	return toRatingInfo(rating), nil
}

// Modify 修改评分值，只允许评分作者操作
func (s *RatingService) Modify(id int64, current *dto.UserInfo, req *dto.RatingUpdateRequest) (*dto.RatingInfo, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	if rating.UserID != current.ID {
		return nil, ErrForbidden
	}

	if err := s.ratingRepo.UpdateValueWithRecompute(rating, req.Rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	rating.Rating = req.Rating
	return toRatingInfo(rating), nil
}

// Delete 删除评分，允许评分作者或管理员操作
func (s *RatingService) Delete(id int64, current *dto.UserInfo) error {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	if rating.UserID != current.ID && !current.IsAdmin {
		return ErrForbidden
	}

	if err := s.ratingRepo.DeleteWithRecompute(rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return nil
}

// ListByMovie 获取电影的评分列表
func (s *RatingService) ListByMovie(movieID int64) ([]dto.RatingInfo, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByMovie(movieID)
	if err != nil {
		return nil, err
	}
	return toRatingInfos(ratings), nil
}

// ListByBook 获取图书的评分列表
func (s *RatingService) ListByBook(bookID int64) ([]dto.RatingInfo, error) {
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByBook(bookID)
	if err != nil {
		return nil, err
	}
	return toRatingInfos(ratings), nil
}

// ListByUser 获取用户的评分列表，附带目标标题
func (s *RatingService) ListByUser(userID int64) ([]dto.UserRatingInfo, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rows, err := s.ratingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.UserRatingInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, dto.UserRatingInfo{
			RatingInfo: dto.RatingInfo{
				ID:        row.ID,
				UserID:    row.UserID,
				MovieID:   row.MovieID,
				BookID:    row.BookID,
				Rating:    row.Rating,
				CreatedAt: row.CreatedAt.Format(time.RFC3339),
			},
			Title: row.Title,
		})
	}
	return infos, nil
}

// checkTarget 校验评分目标，恰好指向一部电影或一本图书且目标存在
func (s *RatingService) checkTarget(movieID, bookID *int64) error {
	if (movieID == nil) == (bookID == nil) {
		return ErrRatingTarget
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

func toRatingInfo(r *model.Rating) *dto.RatingInfo {
	return &dto.RatingInfo{
		ID:        r.ID,
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		BookID:    r.BookID,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func toRatingInfos(ratings []model.Rating) []dto.RatingInfo {
	infos := make([]dto.RatingInfo, 0, len(ratings))
	for i := range ratings {
		infos = append(infos, *toRatingInfo(&ratings[i]))
	}
	return infos
}
