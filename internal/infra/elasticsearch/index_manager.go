package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"seekreviews/internal/config"
	"seekreviews/pkg/logger"

	"go.uber.org/zap"
)

// catalogIndexMapping 目录索引的 mapping，电影和图书共用同一结构
func catalogIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"title": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"description": {"type": "text", "analyzer": "standard"},
				"creator": {"type": "keyword"},
				"genre": {"type": "keyword"},
				"avg_rating": {"type": "float"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// IndexName 返回实体对应的索引名（配置缺省时退回实体名）
func IndexName(entity string) string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index[entity]; name != "" {
		return name
	}
	return entity
}

// EnsureIndex 确保索引存在，不存在则创建
func EnsureIndex(ctx context.Context, indexName string) error {
	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(catalogIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化目录索引（启动时调用），entity 取目录事件里的实体名，
// 保证建索引和读写走同一份名称解析
func InitIndexes(entities ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, entity := range entities {
		if err := EnsureIndex(ctx, IndexName(entity)); err != nil {
			return err
		}
	}
	return nil
}
