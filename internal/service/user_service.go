package service

import (
	"errors"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/repository"
	"seekreviews/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrForbidden        = errors.New("Forbidden")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type UserService struct {
	userRepo     *repository.UserRepository
	favoriteRepo *repository.FavoriteRepository
	seenRepo     *repository.SeenRepository
}

func NewUserService(userRepo *repository.UserRepository, favoriteRepo *repository.FavoriteRepository, seenRepo *repository.SeenRepository) *UserService {
	return &UserService{userRepo: userRepo, favoriteRepo: favoriteRepo, seenRepo: seenRepo}
}

// List 获取全部用户（管理员）
func (s *UserService) List() ([]dto.UserInfo, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i]))
	}
	return infos, nil
}

// GetByID 获取用户公开信息
func (s *UserService) GetByID(id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// FavoritesOf 获取用户的收藏列表
func (s *UserService) FavoritesOf(userID int64) ([]repository.FavoriteRow, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.favoriteRepo.ListByUser(userID)
}

// SeenOf 获取用户的已看/已读列表
func (s *UserService) SeenOf(userID int64) ([]repository.SeenRow, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.seenRepo.ListByUser(userID)
}

// Update 更新用户信息，只允许本人或管理员操作
func (s *UserService) Update(targetID int64, current *dto.UserInfo, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	if current.ID != targetID && !current.IsAdmin {
		return nil, ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		// 排除目标用户自身，重复提交当前用户名不算冲突
		exists, err := s.userRepo.ExistsByUsernameExcept(*req.Username, targetID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		exists, err := s.userRepo.ExistsByEmailExcept(*req.Email, targetID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUserExists
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hashed
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.userRepo.Update(targetID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// Delete 删除用户及其级联数据，只允许本人或管理员操作
func (s *UserService) Delete(targetID int64, current *dto.UserInfo) error {
	if current.ID != targetID && !current.IsAdmin {
		return ErrForbidden
	}

	deleted, err := s.userRepo.Delete(targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
