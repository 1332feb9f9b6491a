package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"seekreviews/internal/api/dto"
	infraES "seekreviews/internal/infra/elasticsearch"
	infraKafka "seekreviews/internal/infra/kafka"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"
	"seekreviews/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SearchService struct {
	movieRepo *repository.MovieRepository
	bookRepo  *repository.BookRepository
}

func NewSearchService(movieRepo *repository.MovieRepository, bookRepo *repository.BookRepository) *SearchService {
	return &SearchService{movieRepo: movieRepo, bookRepo: bookRepo}
}

// SearchMovies 按标题搜索电影（ES 优先，失败则降级到 DB 模糊匹配）
func (s *SearchService) SearchMovies(title string) ([]dto.MovieInfo, error) {
	ids, err := s.searchIDsFromES(infraKafka.EntityMovie, title)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		movies, err := s.movieRepo.SearchByTitle(title)
		if err != nil {
			return nil, err
		}
		return toMovieInfos(movies), nil
	}

	if len(ids) == 0 {
		return []dto.MovieInfo{}, nil
	}

	movies, err := s.movieRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	movieMap := make(map[int64]*model.Movie, len(movies))
	for i := range movies {
		movieMap[movies[i].ID] = &movies[i]
	}
	ordered := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := movieMap[id]; ok {
			ordered = append(ordered, *m)
		}
	}
	return toMovieInfos(ordered), nil
}

// SearchBooks 按标题搜索书籍（ES 优先，失败则降级到 DB 模糊匹配）
func (s *SearchService) SearchBooks(title string) ([]dto.BookInfo, error) {
	ids, err := s.searchIDsFromES(infraKafka.EntityBook, title)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		books, err := s.bookRepo.SearchByTitle(title)
		if err != nil {
			return nil, err
		}
		return toBookInfos(books), nil
	}

	if len(ids) == 0 {
		return []dto.BookInfo{}, nil
	}

	books, err := s.bookRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	bookMap := make(map[int64]*model.Book, len(books))
	for i := range books {
		bookMap[books[i].ID] = &books[i]
	}
	ordered := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := bookMap[id]; ok {
			ordered = append(ordered, *b)
		}
	}
	return toBookInfos(ordered), nil
}

// HandleCatalogEvent 消费目录变更事件，同步搜索索引
func (s *SearchService) HandleCatalogEvent(event *infraKafka.CatalogEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexName := infraES.IndexName(event.Entity)

	if event.Action == infraKafka.ActionDelete {
		return infraES.DeleteDoc(ctx, indexName, event.EntityID)
	}

	switch event.Entity {
	case infraKafka.EntityMovie:
		movie, err := s.movieRepo.GetByID(event.EntityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return infraES.DeleteDoc(ctx, indexName, event.EntityID)
			}
			return err
		}
		return infraES.SyncDoc(ctx, indexName, infraES.MovieToDoc(movie))
	case infraKafka.EntityBook:
		book, err := s.bookRepo.GetByID(event.EntityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return infraES.DeleteDoc(ctx, indexName, event.EntityID)
			}
			return err
		}
		return infraES.SyncDoc(ctx, indexName, infraES.BookToDoc(book))
	default:
		logger.Warn("Unknown catalog event entity", zap.String("entity", event.Entity))
		return nil
	}
}

func (s *SearchService) searchIDsFromES(entity, title string) ([]int64, error) {
	if infraES.Get() == nil {
		return nil, errors.New("elasticsearch client not initialized")
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"title": map[string]interface{}{
					"query":     strings.TrimSpace(title),
					"operator":  "and",
					"fuzziness": "AUTO",
				},
			},
		},
		"_source": []string{"id"},
		"size":    catalogPageSize,
	}
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.IndexName(entity), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, nil
}
