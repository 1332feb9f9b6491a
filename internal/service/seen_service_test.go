package service

import (
	"testing"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeenService(t *testing.T) (*SeenService, *gorm.DB) {
	t.Helper()
	loadTestConfig(t)
	db := newTestDB(t)
	svc := NewSeenService(
		repository.NewSeenRepository(db),
		repository.NewMovieRepository(db),
		repository.NewBookRepository(db),
	)
	return svc, db
}

func TestSeenCreate(t *testing.T) {
	svc, db := newSeenService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{MovieID: &movie.ID})
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.UserID)
	require.NotNil(t, info.MovieID)
	assert.Equal(t, movie.ID, *info.MovieID)
	assert.NotEmpty(t, info.SeenAt)
}

func TestSeenCreateDuplicate(t *testing.T) {
	svc, db := newSeenService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{MovieID: &movie.ID})
	require.NoError(t, err)

	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{MovieID: &movie.ID})
	assert.ErrorIs(t, err, ErrSeenExists)
}

func TestSeenCreateInvalidTarget(t *testing.T) {
	svc, db := newSeenService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{})
	assert.ErrorIs(t, err, ErrSeenTarget)

	missing := int64(999)
	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{BookID: &missing})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestSeenDeletePermissions(t *testing.T) {
	svc, db := newSeenService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{MovieID: &movie.ID})
	require.NoError(t, err)

	err = svc.Delete(info.ID, &dto.UserInfo{ID: other.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(info.ID, &dto.UserInfo{ID: user.ID}))

	err = svc.Delete(info.ID, &dto.UserInfo{ID: user.ID})
	assert.ErrorIs(t, err, ErrSeenNotFound)
}

// 标记已看后，电影详情应带出观看状态
func TestSeenReflectedInMovieDetail(t *testing.T) {
	svc, db := newSeenService(t)
	movieSvc := NewMovieService(repository.NewMovieRepository(db), repository.NewSeenRepository(db))

	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	detail, err := movieSvc.GetDetail(movie.ID, &user.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsSeen)
	assert.Nil(t, detail.SeenID)

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.SeenCreateRequest{MovieID: &movie.ID})
	require.NoError(t, err)

	detail, err = movieSvc.GetDetail(movie.ID, &user.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsSeen)
	require.NotNil(t, detail.SeenID)
	assert.Equal(t, info.ID, *detail.SeenID)

	// 未登录的详情不带观看状态
	anon, err := movieSvc.GetDetail(movie.ID, nil)
	require.NoError(t, err)
	assert.False(t, anon.IsSeen)
}
