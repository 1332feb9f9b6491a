package service

import (
	"errors"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"
	"seekreviews/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrUserExists        = errors.New("User already exists")
	ErrUsernameExists    = errors.New("Username already exists")
	ErrInvalidCredential = errors.New("Invalid credentials")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters long")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册，邮箱和用户名都不允许重复
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthData, error) {
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Description:  req.Description,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.buildAuthData(user)
}

// Login 用户登录，邮箱不存在和密码错误统一返回同一个错误
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthData, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	return s.buildAuthData(user)
}

// VerifyToken 校验令牌并返回其携带的用户信息
func (s *AuthService) VerifyToken(tokenString string) (*dto.UserInfo, error) {
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &dto.UserInfo{
		ID:          claims.UserID,
		Username:    claims.Username,
		Email:       claims.Email,
		IsAdmin:     claims.IsAdmin,
		Description: claims.Description,
	}, nil
}

func (s *AuthService) buildAuthData(user *model.User) (*dto.AuthData, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Username, user.IsAdmin, user.Description)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{Token: token, User: *toUserInfo(user)}, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsAdmin:     user.IsAdmin,
		Description: user.Description,
	}
}
