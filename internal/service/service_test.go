package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seekreviews/internal/config"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const testConfigYAML = `
app:
  name: seekreviews-test
  version: test
  mode: test
  port: 0
jwt:
  secret: test-secret
  expire_hours: 2
kafka:
  brokers: []
  topics: {}
`

func loadTestConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

// newTestDB 按测试名创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Book{},
		&model.Comment{},
		&model.Rating{},
		&model.Seen{},
		&model.Favorite{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string, isAdmin bool) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsAdmin:      isAdmin,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func createTestMovie(t *testing.T, db *gorm.DB, title string) *model.Movie {
	t.Helper()
	movie := &model.Movie{
		Title:       title,
		Description: "desc",
		Director:    "director",
		Genre:       "drama",
	}
	require.NoError(t, repository.NewMovieRepository(db).Create(movie))
	return movie
}

func createTestBook(t *testing.T, db *gorm.DB, title string) *model.Book {
	t.Helper()
	book := &model.Book{
		Title:       title,
		Description: "desc",
		Author:      "author",
		Genre:       "fantasy",
	}
	require.NoError(t, repository.NewBookRepository(db).Create(book))
	return book
}
