package service

import (
	"testing"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	t.Helper()
	loadTestConfig(t)
	db := newTestDB(t)
	svc := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewMovieRepository(db),
		repository.NewBookRepository(db),
	)
	return svc, db
}

func TestCommentCreate(t *testing.T) {
	svc, db := newCommentService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID, Username: "alice"}, &dto.CommentCreateRequest{
		MovieID: &movie.ID,
		Message: "great movie",
	})
	require.NoError(t, err)
	assert.Equal(t, "great movie", info.Message)
	assert.Equal(t, "alice", info.Username)
	require.NotNil(t, info.MovieID)
	assert.Equal(t, movie.ID, *info.MovieID)
	assert.Nil(t, info.BookID)
}

func TestCommentCreateInvalidTarget(t *testing.T) {
	svc, db := newCommentService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")
	book := createTestBook(t, db, "Dune")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.CommentCreateRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrCommentTarget)

	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.CommentCreateRequest{
		MovieID: &movie.ID,
		BookID:  &book.ID,
		Message: "hi",
	})
	assert.ErrorIs(t, err, ErrCommentTarget)
}

func TestCommentModifyPermissions(t *testing.T) {
	svc, db := newCommentService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID, Username: "alice"}, &dto.CommentCreateRequest{
		MovieID: &movie.ID,
		Message: "great movie",
	})
	require.NoError(t, err)

	_, err = svc.Modify(info.ID, &dto.UserInfo{ID: other.ID}, &dto.CommentUpdateRequest{Message: "edited"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Modify(999, &dto.UserInfo{ID: user.ID}, &dto.CommentUpdateRequest{Message: "edited"})
	assert.ErrorIs(t, err, ErrCommentNotFound)

	updated, err := svc.Modify(info.ID, &dto.UserInfo{ID: user.ID, Username: "alice"}, &dto.CommentUpdateRequest{Message: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Message)
}

func TestCommentDeletePermissions(t *testing.T) {
	svc, db := newCommentService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	admin := createTestUser(t, db, "root", "root@example.com", true)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID, Username: "alice"}, &dto.CommentCreateRequest{
		MovieID: &movie.ID,
		Message: "great movie",
	})
	require.NoError(t, err)

	err = svc.Delete(info.ID, &dto.UserInfo{ID: other.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	// 管理员可删除他人评论
	require.NoError(t, svc.Delete(info.ID, &dto.UserInfo{ID: admin.ID, IsAdmin: true}))

	err = svc.Delete(info.ID, &dto.UserInfo{ID: user.ID})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentListByMovie(t *testing.T) {
	svc, db := newCommentService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID, Username: "alice"}, &dto.CommentCreateRequest{
		MovieID: &movie.ID,
		Message: "first",
	})
	require.NoError(t, err)

	comments, err := svc.ListByMovie(movie.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Message)
	assert.Equal(t, "alice", comments[0].Username)

	_, err = svc.ListByMovie(999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
