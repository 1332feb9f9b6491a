package repository

import (
	"time"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// FavoriteRow 用户收藏列表行，联表取出目标信息
type FavoriteRow struct {
	FavoriteID  int64     `json:"favorite_id"`
	FavoritedAt time.Time `json:"favorited_at"`
	MovieID     *int64    `json:"movie_id"`
	MovieTitle  *string   `json:"movie_title"`
	MovieCover  *string   `json:"movie_cover"`
	BookID      *int64    `json:"book_id"`
	BookTitle   *string   `json:"book_title"`
	BookCover   *string   `json:"book_cover"`
}

// ListByUser 获取用户的全部收藏，联表取出目标标题和封面
func (r *FavoriteRepository) ListByUser(userID int64) ([]FavoriteRow, error) {
	var rows []FavoriteRow
	err := r.db.Raw(`
		SELECT
			favorites.id AS favorite_id,
			favorites.created_at AS favorited_at,
			movies.id AS movie_id,
			movies.title AS movie_title,
			movies.cover_image AS movie_cover,
			books.id AS book_id,
			books.title AS book_title,
			books.cover_image AS book_cover
		FROM favorites
		LEFT JOIN movies ON favorites.movie_id = movies.id
		LEFT JOIN books ON favorites.book_id = books.id
		WHERE favorites.user_id = ?
	`, userID).Scan(&rows).Error
	return rows, err
}
