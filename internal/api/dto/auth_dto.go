package dto

// RegisterRequest 用户注册请求
type RegisterRequest struct {
	Username    string  `json:"username" binding:"required,min=1,max=255"`
	Email       string  `json:"email" binding:"required,email,max=255"`
	Password    string  `json:"password" binding:"required"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// LoginRequest 用户登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 用户公开信息
type UserInfo struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	IsAdmin     bool    `json:"is_admin"`
	Description *string `json:"description"`
}

// AuthData 登录/注册成功后返回的数据
type AuthData struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
