package service

import (
	"context"
	"errors"
	"time"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/config"
	infraKafka "seekreviews/internal/infra/kafka"
	"seekreviews/internal/model"
	"seekreviews/internal/repository"
	"seekreviews/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("Movie not found")

// 列表接口固定每页条数
const catalogPageSize = 20

type MovieService struct {
	movieRepo *repository.MovieRepository
	seenRepo  *repository.SeenRepository
}

func NewMovieService(movieRepo *repository.MovieRepository, seenRepo *repository.SeenRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo, seenRepo: seenRepo}
}

// List 分页获取电影列表
func (s *MovieService) List(page int) ([]dto.MovieInfo, error) {
	if page < 1 {
		page = 1
	}
	movies, err := s.movieRepo.List((page-1)*catalogPageSize, catalogPageSize)
	if err != nil {
		return nil, err
	}
	return toMovieInfos(movies), nil
}

// GetDetail 获取电影详情，登录用户附带观看状态
func (s *MovieService) GetDetail(id int64, viewerID *int64) (*dto.MovieDetail, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	detail := &dto.MovieDetail{MovieInfo: *toMovieInfo(movie)}
	if viewerID != nil {
		seen, err := s.seenRepo.FindByViewerAndMovie(*viewerID, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if seen != nil {
			detail.IsSeen = true
			detail.SeenID = &seen.ID
		}
	}
	return detail, nil
}

// ListByGenre 按类型分页获取电影
func (s *MovieService) ListByGenre(genre string, page int) ([]dto.MovieInfo, error) {
	if page < 1 {
		page = 1
	}
	movies, err := s.movieRepo.ListByGenre(genre, (page-1)*catalogPageSize, catalogPageSize)
	if err != nil {
		return nil, err
	}
	return toMovieInfos(movies), nil
}

// Create 创建电影（管理员）
func (s *MovieService) Create(req *dto.MovieCreateRequest) (*dto.MovieInfo, error) {
	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:       req.Title,
		Description: req.Description,
		Director:    req.Director,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		CoverImage:  req.CoverImage,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}

	publishCatalogEvent(infraKafka.EntityMovie, movie.ID, infraKafka.ActionUpsert)
	return toMovieInfo(movie), nil
}

// Modify 更新电影信息（管理员）
func (s *MovieService) Modify(id int64, req *dto.MovieUpdateRequest) (*dto.MovieInfo, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Director != nil {
		updates["director"] = *req.Director
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		updates["release_date"] = releaseDate
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	movie, err := s.movieRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	publishCatalogEvent(infraKafka.EntityMovie, movie.ID, infraKafka.ActionUpsert)
	return toMovieInfo(movie), nil
}

// Delete 删除电影及其级联数据（管理员）
func (s *MovieService) Delete(id int64) error {
	deleted, err := s.movieRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMovieNotFound
	}

	publishCatalogEvent(infraKafka.EntityMovie, id, infraKafka.ActionDelete)
	return nil
}

// publishCatalogEvent 发送目录变更事件，失败只记日志不影响主流程
func publishCatalogEvent(entity string, entityID int64, action string) {
	cfg := config.GetKafka()
	if len(cfg.Brokers) == 0 {
		return
	}
	topic := cfg.Topics["catalog_events"]
	if topic == "" {
		topic = "catalog_events"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &infraKafka.CatalogEvent{Entity: entity, EntityID: entityID, Action: action}
	if err := infraKafka.SendCatalogEvent(ctx, topic, event); err != nil {
		logger.Warn("Failed to publish catalog event",
			zap.String("entity", entity),
			zap.Int64("entity_id", entityID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func toMovieInfo(m *model.Movie) *dto.MovieInfo {
	return &dto.MovieInfo{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Director:    m.Director,
		ReleaseDate: m.ReleaseDate.Format("2006-01-02"),
		Genre:       m.Genre,
		CoverImage:  m.CoverImage,
		AvgRating:   m.AvgRating,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func toMovieInfos(movies []model.Movie) []dto.MovieInfo {
	infos := make([]dto.MovieInfo, 0, len(movies))
	for i := range movies {
		infos = append(infos, *toMovieInfo(&movies[i]))
	}
	return infos
}
