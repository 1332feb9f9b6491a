package repository

import (
	"seekreviews/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateMessage 更新评论内容（权限检查在 service 层完成）
func (r *CommentRepository) UpdateMessage(id int64, message string) error {
	result := r.db.Model(&model.Comment{}).Where("id = ?", id).Update("message", message)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除评论
func (r *CommentRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Comment{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByMovie 获取电影的评论列表（排除同时指向图书的脏数据）
func (r *CommentRepository) ListByMovie(movieID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").Where("movie_id = ? AND book_id IS NULL", movieID).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// ListByBook 获取图书的评论列表
func (r *CommentRepository) ListByBook(bookID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").Where("book_id = ? AND movie_id IS NULL", bookID).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}
