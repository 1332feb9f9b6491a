package service

import (
	"testing"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	loadTestConfig(t)
	db := newTestDB(t)
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewSeenRepository(db),
	)
	return svc, db
}

func TestUserGetByID(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)

	info, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)

	_, err = svc.GetByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdatePermissions(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)

	newName := "alice2"
	_, err := svc.Update(user.ID, &dto.UserInfo{ID: other.ID}, &dto.UserUpdateRequest{Username: &newName})
	assert.ErrorIs(t, err, ErrForbidden)

	// 管理员可以修改任何用户
	info, err := svc.Update(user.ID, &dto.UserInfo{ID: 999, IsAdmin: true}, &dto.UserUpdateRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "alice2", info.Username)
}

func TestUserUpdateKeepsOwnIdentity(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)

	// 重复提交自己当前的用户名和邮箱不算冲突
	sameName := "alice"
	sameEmail := "alice@example.com"
	desc := "hello"
	info, err := svc.Update(user.ID, &dto.UserInfo{ID: user.ID}, &dto.UserUpdateRequest{
		Username:    &sameName,
		Email:       &sameEmail,
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestUserUpdateNoFields(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)

	_, err := svc.Update(user.ID, &dto.UserInfo{ID: user.ID}, &dto.UserUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUserUpdateConflicts(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	createTestUser(t, db, "bob", "bob@example.com", false)

	taken := "bob"
	_, err := svc.Update(user.ID, &dto.UserInfo{ID: user.ID}, &dto.UserUpdateRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameExists)

	takenEmail := "bob@example.com"
	_, err = svc.Update(user.ID, &dto.UserInfo{ID: user.ID}, &dto.UserUpdateRequest{Email: &takenEmail})
	assert.ErrorIs(t, err, ErrUserExists)

	short := "12345"
	_, err = svc.Update(user.ID, &dto.UserInfo{ID: user.ID}, &dto.UserUpdateRequest{Password: &short})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserDelete(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)

	err := svc.Delete(user.ID, &dto.UserInfo{ID: other.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(user.ID, &dto.UserInfo{ID: user.ID}))

	err = svc.Delete(user.ID, &dto.UserInfo{ID: user.ID})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserSeenAndFavorites(t *testing.T) {
	svc, db := newUserService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")
	book := createTestBook(t, db, "Dune")

	require.NoError(t, db.Create(&model.Seen{UserID: user.ID, MovieID: &movie.ID}).Error)
	require.NoError(t, db.Create(&model.Favorite{UserID: user.ID, BookID: &book.ID}).Error)

	seen, err := svc.SeenOf(user.ID)
	require.NoError(t, err)
	require.Len(t, seen, 1)
	require.NotNil(t, seen[0].MovieTitle)
	assert.Equal(t, "Heat", *seen[0].MovieTitle)

	favorites, err := svc.FavoritesOf(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].BookTitle)
	assert.Equal(t, "Dune", *favorites[0].BookTitle)

	_, err = svc.SeenOf(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.FavoritesOf(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserList(t *testing.T) {
	svc, db := newUserService(t)
	createTestUser(t, db, "alice", "alice@example.com", false)
	createTestUser(t, db, "bob", "bob@example.com", false)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
