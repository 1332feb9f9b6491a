package model

import "time"

// User 用户模型
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码哈希
	IsAdmin      bool      `gorm:"not null;default:false;comment:管理员标识" json:"is_admin"`
	Description  *string   `gorm:"type:text;comment:个人简介" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系（删除用户时级联删除其内容）
	Comments  []Comment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Ratings   []Rating   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
	Seen      []Seen     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"seen,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}

func (User) TableName() string {
	return "users"
}
