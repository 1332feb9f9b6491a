package model

import "time"

// Comment 评论模型。movie_id 与 book_id 互斥，只允许设置其中一个
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_comments_user_id;comment:评论用户ID" json:"user_id"`
	MovieID   *int64    `gorm:"index:idx_comments_movie_id;comment:被评论电影ID" json:"movie_id"`
	BookID    *int64    `gorm:"index:idx_comments_book_id;comment:被评论图书ID" json:"book_id"`
	Message   string    `gorm:"type:text;not null;comment:评论内容" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at;comment:评论时间" json:"created_at"`

	// 关联关系
	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"movie,omitempty"`
	Book  *Book  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
