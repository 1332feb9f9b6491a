package dto

// UserUpdateRequest 用户信息更新请求，所有字段可选
type UserUpdateRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=1,max=255"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Password    *string `json:"password"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}
