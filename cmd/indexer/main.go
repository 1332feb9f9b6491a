package main

import (
	"context"
	"fmt"
	"time"

	"seekreviews/internal/config"
	"seekreviews/internal/infra/database"
	infraES "seekreviews/internal/infra/elasticsearch"
	infraKafka "seekreviews/internal/infra/kafka"
	"seekreviews/internal/repository"
	"seekreviews/pkg/logger"

	"go.uber.org/zap"
)

const batchSize = 500

// 全量重建搜索索引：按主键分批拉取电影和书籍，批量写入 ES
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(infraKafka.EntityMovie, infraKafka.EntityBook); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	db := database.Get()
	movieRepo := repository.NewMovieRepository(db)
	bookRepo := repository.NewBookRepository(db)

	start := time.Now()

	movieCount, err := reindexMovies(movieRepo)
	if err != nil {
		logger.Fatal("Movie reindex failed", zap.Error(err))
	}

	bookCount, err := reindexBooks(bookRepo)
	if err != nil {
		logger.Fatal("Book reindex failed", zap.Error(err))
	}

	logger.Info("Reindex completed",
		zap.Int("movies", movieCount),
		zap.Int("books", bookCount),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func reindexMovies(repo *repository.MovieRepository) (int, error) {
	indexName := infraES.IndexName(infraKafka.EntityMovie)
	total := 0
	afterID := int64(0)

	for {
		movies, err := repo.ListBatch(afterID, batchSize)
		if err != nil {
			return total, err
		}
		if len(movies) == 0 {
			return total, nil
		}

		docs := make([]infraES.CatalogDoc, 0, len(movies))
		for i := range movies {
			docs = append(docs, *infraES.MovieToDoc(&movies[i]))
		}

		if err := bulkSync(indexName, docs); err != nil {
			return total, err
		}

		total += len(movies)
		afterID = movies[len(movies)-1].ID
		logger.Info("Movie batch indexed", zap.Int("total", total))
	}
}

func reindexBooks(repo *repository.BookRepository) (int, error) {
	indexName := infraES.IndexName(infraKafka.EntityBook)
	total := 0
	afterID := int64(0)

	for {
		books, err := repo.ListBatch(afterID, batchSize)
		if err != nil {
			return total, err
		}
		if len(books) == 0 {
			return total, nil
		}

		docs := make([]infraES.CatalogDoc, 0, len(books))
		for i := range books {
			docs = append(docs, *infraES.BookToDoc(&books[i]))
		}

		if err := bulkSync(indexName, docs); err != nil {
			return total, err
		}

		total += len(books)
		afterID = books[len(books)-1].ID
		logger.Info("Book batch indexed", zap.Int("total", total))
	}
}

func bulkSync(indexName string, docs []infraES.CatalogDoc) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	_, failed, err := infraES.BulkSyncDocs(ctx, indexName, docs)
	if err != nil {
		return err
	}
	if failed > 0 {
		logger.Warn("Some documents failed to index",
			zap.String("index", indexName),
			zap.Int("failed", failed),
		)
	}
	return nil
}
