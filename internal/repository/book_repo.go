package repository

import (
	"seekreviews/internal/model"

	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// GetByID 根据 ID 获取图书
func (r *BookRepository) GetByID(id int64) (*model.Book, error) {
	var book model.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByIDs 批量查询图书（按搜索结果顺序回填用）
func (r *BookRepository) GetByIDs(ids []int64) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var books []model.Book
	err := r.db.Where("id IN ?", ids).Find(&books).Error
	return books, err
}

// Create 创建图书
func (r *BookRepository) Create(book *model.Book) error {
	return r.db.Create(book).Error
}

// Update 更新图书字段（传入 map，只更新请求中出现的字段）
func (r *BookRepository) Update(id int64, updates map[string]interface{}) (*model.Book, error) {
	result := r.db.Model(&model.Book{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除图书
func (r *BookRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Book{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询图书（数据库自然顺序）
func (r *BookRepository) List(skip, limit int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Offset(skip).Limit(limit).Find(&books).Error
	return books, err
}

// SearchByTitle 按标题做不区分大小写的子串匹配
func (r *BookRepository) SearchByTitle(title string) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Where("title ILIKE ?", "%"+title+"%").Find(&books).Error
	return books, err
}

// ListByGenre 按类型精确匹配并分页
func (r *BookRepository) ListByGenre(genre string, skip, limit int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Where("genre = ?", genre).Offset(skip).Limit(limit).Find(&books).Error
	return books, err
}

// ListBatch 按主键顺序批量读取（索引重建用）
func (r *BookRepository) ListBatch(afterID int64, limit int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Where("id > ?", afterID).Order("id ASC").Limit(limit).Find(&books).Error
	return books, err
}
