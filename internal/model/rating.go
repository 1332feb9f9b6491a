package model

import "time"

// Rating 评分模型。movie_id 与 book_id 互斥，只允许设置其中一个。
// 部分唯一索引保证同一用户对同一目标只能有一条评分，
// 并发重复提交由数据库约束兜底（应用层转换为 400）。
type Rating struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评分ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_ratings_user_id;uniqueIndex:uq_ratings_user_movie,priority:1;uniqueIndex:uq_ratings_user_book,priority:1;comment:评分用户ID" json:"user_id"`
	MovieID   *int64    `gorm:"index:idx_ratings_movie_id;uniqueIndex:uq_ratings_user_movie,priority:2,where:movie_id IS NOT NULL;comment:被评分电影ID" json:"movie_id"`
	BookID    *int64    `gorm:"index:idx_ratings_book_id;uniqueIndex:uq_ratings_user_book,priority:2,where:book_id IS NOT NULL;comment:被评分图书ID" json:"book_id"`
	Rating    float64   `gorm:"not null;comment:评分值" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:评分时间" json:"created_at"`

	// 关联关系
	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"movie,omitempty"`
	Book  *Book  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
