package dto

// RatingCreateRequest 打分请求，movie_id 与 book_id 二选一
type RatingCreateRequest struct {
	MovieID *int64  `json:"movie_id"`
	BookID  *int64  `json:"book_id"`
	Rating  float64 `json:"rating" binding:"gte=0,lte=5"`
}

// RatingUpdateRequest 修改评分请求
type RatingUpdateRequest struct {
	Rating float64 `json:"rating" binding:"gte=0,lte=5"`
}

// RatingInfo 评分信息
type RatingInfo struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	MovieID   *int64  `json:"movie_id"`
	BookID    *int64  `json:"book_id"`
	Rating    float64 `json:"rating"`
	CreatedAt string  `json:"created_at"`
}

// UserRatingInfo 用户评分列表项，附带目标标题
type UserRatingInfo struct {
	RatingInfo
	Title *string `json:"title"`
}
