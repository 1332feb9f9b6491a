package dto

// SeenCreateRequest 标记已看/已读请求，movie_id 与 book_id 二选一
type SeenCreateRequest struct {
	MovieID *int64 `json:"movie_id"`
	BookID  *int64 `json:"book_id"`
}

// SeenInfo 观看记录
type SeenInfo struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	MovieID *int64 `json:"movie_id"`
	BookID  *int64 `json:"book_id"`
	SeenAt  string `json:"seen_at"`
}
