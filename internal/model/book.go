package model

import "time"

// Book 图书模型
type Book struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:图书标识" json:"id"`
	Title       string    `gorm:"size:255;not null;comment:图书标题" json:"title"`
	Description string    `gorm:"type:text;comment:图书简介" json:"description"`
	Author      string    `gorm:"size:255;comment:作者" json:"author"`
	Genre       string    `gorm:"size:100;index:idx_books_genre;comment:类型" json:"genre"`
	PublishDate time.Time `gorm:"type:date;comment:出版日期" json:"publish_date"`
	CoverImage  *string   `gorm:"size:500;comment:封面图片地址" json:"cover_image"`
	AvgRating   float64   `gorm:"not null;default:0;comment:平均评分" json:"avg_rating"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}
