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
	ErrCommentNotFound = errors.New("Comment not found")
	ErrCommentTarget   = errors.New("Comment must target a movie or a book")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	movieRepo   *repository.MovieRepository
	bookRepo    *repository.BookRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, movieRepo *repository.MovieRepository, bookRepo *repository.BookRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, movieRepo: movieRepo, bookRepo: bookRepo}
}

// Create 发表评论，目标必须是电影或图书二选一
func (s *CommentService) Create(current *dto.UserInfo, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if err := s.checkTarget(req.MovieID, req.BookID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID:  current.ID,
		MovieID: req.MovieID,
		BookID:  req.BookID,
		Message: req.Message,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	info := toCommentInfo(comment)
	info.Username = current.Username
	return info, nil
}

// Modify 修改评论内容，只允许评论作者操作
func (s *CommentService) Modify(id int64, current *dto.UserInfo, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != current.ID {
		return nil, ErrForbidden
	}

	if err := s.commentRepo.UpdateMessage(id, req.Message); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	comment.Message = req.Message
	info := toCommentInfo(comment)
	info.Username = current.Username
	return info, nil
}

// Delete 删除评论，允许评论作者或管理员操作
func (s *CommentService) Delete(id int64, current *dto.UserInfo) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != current.ID && !current.IsAdmin {
		return ErrForbidden
	}

	deleted, err := s.commentRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

// ListByMovie 获取电影的评论列表
func (s *CommentService) ListByMovie(movieID int64) ([]dto.CommentInfo, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByMovie(movieID)
	if err != nil {
		return nil, err
	}
	return toCommentInfos(comments), nil
}

// ListByBook 获取图书的评论列表
func (s *CommentService) ListByBook(bookID int64) ([]dto.CommentInfo, error) {
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByBook(bookID)
	if err != nil {
		return nil, err
	}
	return toCommentInfos(comments), nil
}

// checkTarget 校验评论目标，恰好指向一部电影或一本图书且目标存在
func (s *CommentService) checkTarget(movieID, bookID *int64) error {
	if (movieID == nil) == (bookID == nil) {
		return ErrCommentTarget
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

func toCommentInfo(c *model.Comment) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        c.ID,
		UserID:    c.UserID,
		MovieID:   c.MovieID,
		BookID:    c.BookID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.User.ID != 0 {
		info.Username = c.User.Username
	}
	return info
}

func toCommentInfos(comments []model.Comment) []dto.CommentInfo {
	infos := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		infos = append(infos, *toCommentInfo(&comments[i]))
	}
	return infos
}
