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

func newRatingService(t *testing.T) (*RatingService, *gorm.DB) {
	t.Helper()
	loadTestConfig(t)
	db := newTestDB(t)
	svc := NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewMovieRepository(db),
		repository.NewBookRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func movieAvg(t *testing.T, db *gorm.DB, id int64) float64 {
	t.Helper()
	var movie model.Movie
	require.NoError(t, db.First(&movie, id).Error)
	return movie.AvgRating
}

func TestRatingCreateRecomputesAverage(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, info.Rating)
	assert.Equal(t, 4.0, movieAvg(t, db, movie.ID))

	_, err = svc.Create(&dto.UserInfo{ID: other.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, movieAvg(t, db, movie.ID))
}

func TestRatingCreateDuplicate(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  4,
	})
	require.NoError(t, err)

	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  5,
	})
	assert.ErrorIs(t, err, ErrRatingExists)
}

func TestRatingCreateInvalidTarget(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")
	book := createTestBook(t, db, "Dune")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrRatingTarget)

	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		BookID:  &book.ID,
		Rating:  3,
	})
	assert.ErrorIs(t, err, ErrRatingTarget)
}

func TestRatingCreateTargetNotFound(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)

	missing := int64(999)
	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &missing,
		Rating:  3,
	})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestRatingModify(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  4,
	})
	require.NoError(t, err)

	_, err = svc.Modify(info.ID, &dto.UserInfo{ID: other.ID}, &dto.RatingUpdateRequest{Rating: 1})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Modify(info.ID, &dto.UserInfo{ID: user.ID}, &dto.RatingUpdateRequest{Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Rating)
	assert.Equal(t, 2.0, movieAvg(t, db, movie.ID))
}

func TestRatingDeleteRecomputesAverage(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	other := createTestUser(t, db, "bob", "bob@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  4,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.UserInfo{ID: other.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(info.ID, &dto.UserInfo{ID: user.ID}))
	assert.Equal(t, 2.0, movieAvg(t, db, movie.ID))
}

func TestRatingDeleteLastResetsAverage(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")

	info, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(info.ID, &dto.UserInfo{ID: user.ID}))
	assert.Equal(t, 0.0, movieAvg(t, db, movie.ID))
}

func TestRatingListByUser(t *testing.T) {
	svc, db := newRatingService(t)
	user := createTestUser(t, db, "alice", "alice@example.com", false)
	movie := createTestMovie(t, db, "Heat")
	book := createTestBook(t, db, "Dune")

	_, err := svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		MovieID: &movie.ID,
		Rating:  4,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.UserInfo{ID: user.ID}, &dto.RatingCreateRequest{
		BookID: &book.ID,
		Rating: 5,
	})
	require.NoError(t, err)

	infos, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	titles := []string{*infos[0].Title, *infos[1].Title}
	assert.Contains(t, titles, "Heat")
	assert.Contains(t, titles, "Dune")
}
