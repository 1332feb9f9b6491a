package dto

// CommentCreateRequest 发表评论请求，movie_id 与 book_id 二选一
type CommentCreateRequest struct {
	MovieID *int64 `json:"movie_id"`
	BookID  *int64 `json:"book_id"`
	Message string `json:"message" binding:"required,min=1"`
}

// CommentUpdateRequest 修改评论请求
type CommentUpdateRequest struct {
	Message string `json:"message" binding:"required,min=1"`
}

// CommentInfo 评论信息
type CommentInfo struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	MovieID   *int64 `json:"movie_id"`
	BookID    *int64 `json:"book_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
