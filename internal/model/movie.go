package model

import "time"

// Movie 电影模型
type Movie struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:电影标识" json:"id"`
	Title       string    `gorm:"size:255;not null;comment:电影标题" json:"title"`
	Description string    `gorm:"type:text;comment:电影简介" json:"description"`
	Director    string    `gorm:"size:255;comment:导演" json:"director"`
	ReleaseDate time.Time `gorm:"type:date;comment:上映日期" json:"release_date"`
	Genre       string    `gorm:"size:100;index:idx_movies_genre;comment:类型" json:"genre"`
	CoverImage  *string   `gorm:"size:500;comment:封面图片地址" json:"cover_image"`
	AvgRating   float64   `gorm:"not null;default:0;comment:平均评分" json:"avg_rating"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
}

func (Movie) TableName() string {
	return "movies"
}
