package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"seekreviews/internal/model"
	"seekreviews/pkg/logger"

	"go.uber.org/zap"
)

// CatalogDoc 目录条目的 ES 文档结构，电影和图书共用
type CatalogDoc struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Creator     string  `json:"creator"` // 电影为导演，图书为作者
	Genre       string  `json:"genre"`
	AvgRating   float64 `json:"avg_rating"`
	CreatedAt   string  `json:"created_at"`
}

// MovieToDoc 电影转 ES 文档
func MovieToDoc(m *model.Movie) *CatalogDoc {
	return &CatalogDoc{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Creator:     m.Director,
		Genre:       m.Genre,
		AvgRating:   m.AvgRating,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// BookToDoc 图书转 ES 文档
func BookToDoc(b *model.Book) *CatalogDoc {
	return &CatalogDoc{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Creator:     b.Author,
		Genre:       b.Genre,
		AvgRating:   b.AvgRating,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

// SyncDoc 同步单个目录条目到 ES
func SyncDoc(ctx context.Context, indexName string, doc *CatalogDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, indexName, fmt.Sprintf("%d", doc.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Catalog doc synced to ES",
		zap.String("index", indexName),
		zap.Int64("id", doc.ID),
	)
	return nil
}

// DeleteDoc 从 ES 删除目录条目
func DeleteDoc(ctx context.Context, indexName string, id int64) error {
	resp, err := Delete(ctx, indexName, fmt.Sprintf("%d", id))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncDocs 批量同步目录条目到 ES
func BulkSyncDocs(ctx context.Context, indexName string, docs []CatalogDoc) (success, failed int, err error) {
	var buf strings.Builder
	for i := range docs {
		docBody, _ := json.Marshal(&docs[i])

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, docs[i].ID))
		buf.WriteString("\n")
		buf.Write([]byte(docBody))
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(docs), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed",
		zap.String("index", indexName),
		zap.Int("success", success),
		zap.Int("failed", failed),
	)
	return success, failed, nil
}
