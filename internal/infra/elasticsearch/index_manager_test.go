package elasticsearch

import (
	"os"
	"path/filepath"
	"testing"

	"seekreviews/internal/config"
	infraKafka "seekreviews/internal/infra/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

// 建索引和读写必须按同一个实体键解析出同一个索引名，
// 否则启动时建好的 mapping 永远不会被命中
func TestIndexNameResolvesCatalogEntities(t *testing.T) {
	loadConfig(t, `
elasticsearch:
  hosts:
    - http://localhost:9200
  index:
    movie: movies
    book: books
`)

	assert.Equal(t, "movies", IndexName(infraKafka.EntityMovie))
	assert.Equal(t, "books", IndexName(infraKafka.EntityBook))
}

func TestIndexNameFallsBackToEntity(t *testing.T) {
	loadConfig(t, `
elasticsearch:
  hosts:
    - http://localhost:9200
`)

	assert.Equal(t, "movie", IndexName(infraKafka.EntityMovie))
	assert.Equal(t, "book", IndexName(infraKafka.EntityBook))
}
