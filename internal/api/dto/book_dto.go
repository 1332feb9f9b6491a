package dto

// BookCreateRequest 创建书籍请求（管理员）
type BookCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Author      string  `json:"author" binding:"required,max=255"`
	PublishDate string  `json:"publish_date" binding:"required,datetime=2006-01-02"`
	Genre       string  `json:"genre" binding:"required,max=100"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=500"`
}

// BookUpdateRequest 更新书籍请求，所有字段可选
type BookUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Author      *string `json:"author" binding:"omitempty,max=255"`
	PublishDate *string `json:"publish_date" binding:"omitempty,datetime=2006-01-02"`
	Genre       *string `json:"genre" binding:"omitempty,max=100"`
	CoverImage  *string `json:"cover_image" binding:"omitempty,max=500"`
}

// BookInfo 书籍公开信息
type BookInfo struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	PublishDate string  `json:"publish_date"`
	Genre       string  `json:"genre"`
	CoverImage  *string `json:"cover_image"`
	AvgRating   float64 `json:"avg_rating"`
	CreatedAt   string  `json:"created_at"`
}

// BookDetail 书籍详情，登录用户附带阅读状态
type BookDetail struct {
	BookInfo
	IsSeen bool   `json:"is_seen"`
	SeenID *int64 `json:"seen_id"`
}
