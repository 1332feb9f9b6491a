package repository

import (
	"time"

	"seekreviews/internal/model"

	"gorm.io/gorm"
)

type SeenRepository struct {
	db *gorm.DB
}

func NewSeenRepository(db *gorm.DB) *SeenRepository {
	return &SeenRepository{db: db}
}

// SeenRow 用户观影/阅读记录行，联表取出目标信息
type SeenRow struct {
	SeenID     int64     `json:"seen_id"`
	SeenAt     time.Time `json:"seen_at"`
	MovieID    *int64    `json:"movie_id"`
	MovieTitle *string   `json:"movie_title"`
	MovieCover *string   `json:"movie_cover"`
	BookID     *int64    `json:"book_id"`
	BookTitle  *string   `json:"book_title"`
	BookCover  *string   `json:"book_cover"`
}

func (r *SeenRepository) Create(seen *model.Seen) error {
	return r.db.Create(seen).Error
}

func (r *SeenRepository) GetByID(id int64) (*model.Seen, error) {
	var seen model.Seen
	err := r.db.First(&seen, id).Error
	if err != nil {
		return nil, err
	}
	return &seen, nil
}

// Delete 删除记录
func (r *SeenRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Seen{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查用户对目标是否已有记录
func (r *SeenRepository) Exists(userID int64, movieID, bookID *int64) (bool, error) {
	query := r.db.Model(&model.Seen{}).Where("user_id = ?", userID)
	if movieID != nil {
		query = query.Where("movie_id = ? AND book_id IS NULL", *movieID)
	} else {
		query = query.Where("book_id = ? AND movie_id IS NULL", *bookID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// FindByViewerAndMovie 查询观看者对某部电影的记录（详情页 is_seen 用）
func (r *SeenRepository) FindByViewerAndMovie(userID, movieID int64) (*model.Seen, error) {
	var seen model.Seen
	err := r.db.Where("user_id = ? AND movie_id = ? AND book_id IS NULL", userID, movieID).
		First(&seen).Error
	if err != nil {
		return nil, err
	}
	return &seen, nil
}

// FindByViewerAndBook 查询读者对某本图书的记录
func (r *SeenRepository) FindByViewerAndBook(userID, bookID int64) (*model.Seen, error) {
	var seen model.Seen
	err := r.db.Where("user_id = ? AND book_id = ? AND movie_id IS NULL", userID, bookID).
		First(&seen).Error
	if err != nil {
		return nil, err
	}
	return &seen, nil
}

// ListByUser 获取用户的全部记录，联表取出目标标题和封面
func (r *SeenRepository) ListByUser(userID int64) ([]SeenRow, error) {
	var rows []SeenRow
	err := r.db.Raw(`
		SELECT
			seen.id AS seen_id,
			seen.seen_at AS seen_at,
			movies.id AS movie_id,
			movies.title AS movie_title,
			movies.cover_image AS movie_cover,
			books.id AS book_id,
			books.title AS book_title,
			books.cover_image AS book_cover
		FROM seen
		LEFT JOIN movies ON seen.movie_id = movies.id
		LEFT JOIN books ON seen.book_id = books.id
		WHERE seen.user_id = ?
	`, userID).Scan(&rows).Error
	return rows, err
}
