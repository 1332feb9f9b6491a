package service

import (
	"fmt"
	"testing"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMovieService(t *testing.T) (*MovieService, *gorm.DB) {
	t.Helper()
	loadTestConfig(t)
	db := newTestDB(t)
	svc := NewMovieService(repository.NewMovieRepository(db), repository.NewSeenRepository(db))
	return svc, db
}

func TestMovieCreateAndGetDetail(t *testing.T) {
	svc, _ := newMovieService(t)

	info, err := svc.Create(&dto.MovieCreateRequest{
		Title:       "Heat",
		Description: "crime drama",
		Director:    "Michael Mann",
		ReleaseDate: "1995-12-15",
		Genre:       "crime",
	})
	require.NoError(t, err)
	assert.Equal(t, "Heat", info.Title)
	assert.Equal(t, "1995-12-15", info.ReleaseDate)
	assert.Equal(t, 0.0, info.AvgRating)

	detail, err := svc.GetDetail(info.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Heat", detail.Title)
	assert.False(t, detail.IsSeen)

	_, err = svc.GetDetail(999, nil)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieListPagination(t *testing.T) {
	svc, db := newMovieService(t)
	for i := 0; i < 25; i++ {
		createTestMovie(t, db, fmt.Sprintf("Movie %02d", i))
	}

	page1, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, page1, 20)

	page2, err := svc.List(2)
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	page3, err := svc.List(3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestMovieListByGenre(t *testing.T) {
	svc, db := newMovieService(t)
	createTestMovie(t, db, "Heat")

	require.NoError(t, db.Exec("UPDATE movies SET genre = 'crime' WHERE title = 'Heat'").Error)
	createTestMovie(t, db, "Arrival")

	movies, err := svc.ListByGenre("crime", 1)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0].Title)

	none, err := svc.ListByGenre("western", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMovieModify(t *testing.T) {
	svc, db := newMovieService(t)
	movie := createTestMovie(t, db, "Heat")

	_, err := svc.Modify(movie.ID, &dto.MovieUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	newTitle := "Heat (Director's Cut)"
	info, err := svc.Modify(movie.ID, &dto.MovieUpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, info.Title)

	_, err = svc.Modify(999, &dto.MovieUpdateRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieDelete(t *testing.T) {
	svc, db := newMovieService(t)
	movie := createTestMovie(t, db, "Heat")

	require.NoError(t, svc.Delete(movie.ID))
	assert.ErrorIs(t, svc.Delete(movie.ID), ErrMovieNotFound)
}
