package model

import "time"

// Seen 观看/阅读记录模型。movie_id 与 book_id 互斥。
// 与评分相同，用部分唯一索引保证同一用户对同一目标只有一条记录。
type Seen struct {
	ID      int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	UserID  int64     `gorm:"not null;index:idx_seen_user_id;uniqueIndex:uq_seen_user_movie,priority:1;uniqueIndex:uq_seen_user_book,priority:1;comment:用户ID" json:"user_id"`
	MovieID *int64    `gorm:"index:idx_seen_movie_id;uniqueIndex:uq_seen_user_movie,priority:2,where:movie_id IS NOT NULL;comment:电影ID" json:"movie_id"`
	BookID  *int64    `gorm:"index:idx_seen_book_id;uniqueIndex:uq_seen_user_book,priority:2,where:book_id IS NOT NULL;comment:图书ID" json:"book_id"`
	SeenAt  time.Time `gorm:"autoCreateTime;comment:记录时间" json:"seen_at"`

	// 关联关系
	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"movie,omitempty"`
	Book  *Book  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

func (Seen) TableName() string {
	return "seen"
}
