package model

import "time"

// Favorite 收藏模型。movie_id 与 book_id 互斥。
// 当前只读：没有创建/删除接口，数据由外部导入。
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_favorites_user_id;comment:收藏用户ID" json:"user_id"`
	MovieID   *int64    `gorm:"index:idx_favorites_movie_id;comment:电影ID" json:"movie_id"`
	BookID    *int64    `gorm:"index:idx_favorites_book_id;comment:图书ID" json:"book_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`

	// 关联关系
	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"movie,omitempty"`
	Book  *Book  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
