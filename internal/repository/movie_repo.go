package repository

import (
	"seekreviews/internal/model"

	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// GetByID 根据 ID 获取电影
func (r *MovieRepository) GetByID(id int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetByIDs 批量查询电影（按搜索结果顺序回填用）
func (r *MovieRepository) GetByIDs(ids []int64) ([]model.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var movies []model.Movie
	err := r.db.Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

// Create 创建电影
func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// Update 更新电影字段（传入 map，只更新请求中出现的字段）
func (r *MovieRepository) Update(id int64, updates map[string]interface{}) (*model.Movie, error) {
	result := r.db.Model(&model.Movie{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除电影
func (r *MovieRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Movie{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询电影（数据库自然顺序）
func (r *MovieRepository) List(skip, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Offset(skip).Limit(limit).Find(&movies).Error
	return movies, err
}

// SearchByTitle 按标题做不区分大小写的子串匹配
func (r *MovieRepository) SearchByTitle(title string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("title ILIKE ?", "%"+title+"%").Find(&movies).Error
	return movies, err
}

// ListByGenre 按类型精确匹配并分页
func (r *MovieRepository) ListByGenre(genre string, skip, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("genre = ?", genre).Offset(skip).Limit(limit).Find(&movies).Error
	return movies, err
}

// ListBatch 按主键顺序批量读取（索引重建用）
func (r *MovieRepository) ListBatch(afterID int64, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("id > ?", afterID).Order("id ASC").Limit(limit).Find(&movies).Error
	return movies, err
}
