package repository

import (
	"time"

	"seekreviews/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// UserRatingRow 用户评分列表行，附带目标标题
type UserRatingRow struct {
	ID        int64     `json:"id"`
	MovieID   *int64    `json:"movie_id"`
	BookID    *int64    `json:"book_id"`
	UserID    int64     `json:"user_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	Title     *string   `json:"title"`
}

func (r *RatingRepository) GetByID(id int64) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Exists 检查用户对目标是否已有评分
func (r *RatingRepository) Exists(userID int64, movieID, bookID *int64) (bool, error) {
	query := r.db.Model(&model.Rating{}).Where("user_id = ?", userID)
	if movieID != nil {
		query = query.Where("movie_id = ? AND book_id IS NULL", *movieID)
	} else {
		query = query.Where("book_id = ? AND movie_id IS NULL", *bookID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// CreateWithRecompute 写入评分并在同一事务内重算目标的平均分
func (r *RatingRepository) CreateWithRecompute(rating *model.Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}
		return recomputeAvgRating(tx, rating.MovieID, rating.BookID)
	})
}

// UpdateValueWithRecompute 更新评分值并在同一事务内重算目标的平均分
func (r *RatingRepository) UpdateValueWithRecompute(rating *model.Rating, value float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Rating{}).Where("id = ?", rating.ID).Update("rating", value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeAvgRating(tx, rating.MovieID, rating.BookID)
	})
}

// DeleteWithRecompute 删除评分并在同一事务内重算目标的平均分
func (r *RatingRepository) DeleteWithRecompute(rating *model.Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Rating{}, rating.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeAvgRating(tx, rating.MovieID, rating.BookID)
	})
}

// ListByMovie 获取电影的评分列表
func (r *RatingRepository) ListByMovie(movieID int64) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Where("movie_id = ? AND book_id IS NULL", movieID).
		Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}

// ListByBook 获取图书的评分列表
func (r *RatingRepository) ListByBook(bookID int64) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Where("book_id = ? AND movie_id IS NULL", bookID).
		Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}

// ListByUser 获取用户的评分列表，联表取出目标标题
func (r *RatingRepository) ListByUser(userID int64) ([]UserRatingRow, error) {
	var rows []UserRatingRow
	err := r.db.Raw(`
		SELECT
			ratings.id,
			ratings.movie_id,
			ratings.book_id,
			ratings.user_id,
			ratings.rating,
			ratings.created_at,
			COALESCE(movies.title, books.title) AS title
		FROM ratings
		LEFT JOIN movies ON ratings.movie_id = movies.id
		LEFT JOIN books ON ratings.book_id = books.id
		WHERE ratings.user_id = ?
		ORDER BY ratings.created_at DESC
	`, userID).Scan(&rows).Error
	return rows, err
}

// recomputeAvgRating 用一条关联 UPDATE 把目标的 avg_rating 设为
// COALESCE(AVG(rating), 0)，与触发它的评分变更同处一个事务
func recomputeAvgRating(tx *gorm.DB, movieID, bookID *int64) error {
	if movieID != nil {
		return tx.Model(&model.Movie{}).Where("id = ?", *movieID).
			Update("avg_rating", gorm.Expr(
				"(SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE movie_id = ? AND book_id IS NULL)",
				*movieID,
			)).Error
	}
	if bookID != nil {
		return tx.Model(&model.Book{}).Where("id = ?", *bookID).
			Update("avg_rating", gorm.Expr(
				"(SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE book_id = ? AND movie_id IS NULL)",
				*bookID,
			)).Error
	}
	return nil
}
