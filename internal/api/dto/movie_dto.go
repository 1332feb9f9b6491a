package dto

// MovieCreateRequest 创建电影请求（管理员）
type MovieCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Director    string  `json:"director" binding:"required,max=255"`
	ReleaseDate string  `json:"release_date" binding:"required,datetime=2006-01-02"`
	Genre       string  `json:"genre" binding:"required,max=100"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=500"`
}

// MovieUpdateRequest 更新电影请求，所有字段可选
type MovieUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Director    *string `json:"director" binding:"omitempty,max=255"`
	ReleaseDate *string `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
	Genre       *string `json:"genre" binding:"omitempty,max=100"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=500"`
}

// MovieInfo 电影公开信息
type MovieInfo struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Director    string  `json:"director"`
	ReleaseDate string  `json:"release_date"`
	Genre       string  `json:"genre"`
	CoverImage  *string `json:"cover_image"`
	AvgRating   float64 `json:"avg_rating"`
	CreatedAt   string  `json:"created_at"`
}

// MovieDetail 电影详情，登录用户附带观看状态
type MovieDetail struct {
	MovieInfo
	IsSeen bool   `json:"is_seen"`
	SeenID *int64 `json:"seen_id"`
}
