package embeddings

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	"github.com/pgvector/pgvector-go"
)

// Cache stores computed embeddings keyed by model and text.
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool, error)
	Set(ctx context.Context, key string, embedding []float32) error
}

// CacheKey derives a stable key from model and text.
func CacheKey(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model + ":" + text))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// PostgresCache persists embeddings in a pgvector column.
type PostgresCache struct {
	db *sql.DB
}

// NewPostgresCache creates a Postgres-backed embedding cache.
func NewPostgresCache(db *sql.DB) *PostgresCache {
	return &PostgresCache{db: db}
}

// Get retrieves an embedding by cache key.
func (c *PostgresCache) Get(ctx context.Context, key string) ([]float32, bool, error) {
	var vec pgvector.Vector
	err := c.db.QueryRowContext(ctx,
		`SELECT embedding FROM embedding_cache WHERE cache_key = $1`, key,
	).Scan(&vec)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return vec.Slice(), true, nil
}

// Set stores an embedding, replacing any existing entry for the key.
func (c *PostgresCache) Set(ctx context.Context, key string, embedding []float32) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO embedding_cache (cache_key, embedding)
		 VALUES ($1, $2)
		 ON CONFLICT (cache_key) DO UPDATE SET embedding = EXCLUDED.embedding`,
		key, pgvector.NewVector(embedding),
	)
	return err
}

// NoOpCache caches nothing.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, key string) ([]float32, bool, error) {
	return nil, false, nil
}

func (NoOpCache) Set(ctx context.Context, key string, embedding []float32) error {
	return nil
}

// CachedClient wraps a Client with a Cache.
type CachedClient struct {
	client *Client
	cache  Cache
}

// NewCachedClient creates a caching wrapper around an embedding
// client. A nil cache disables caching.
func NewCachedClient(client *Client, cache Cache) *CachedClient {
	if cache == nil {
		cache = NoOpCache{}
	}
	return &CachedClient{client: client, cache: cache}
}

// EmbedTexts returns embeddings for texts, serving cached entries
// where possible. Cache errors are ignored; the client is the source
// of truth.
func (c *CachedClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	keys := make([]string, len(texts))

	var missingTexts []string
	var missingIndices []int
	for i, text := range texts {
		keys[i] = CacheKey(c.client.Model(), text)
		if emb, ok, err := c.cache.Get(ctx, keys[i]); err == nil && ok {
			results[i] = emb
			continue
		}
		missingTexts = append(missingTexts, text)
		missingIndices = append(missingIndices, i)
	}

	if len(missingTexts) > 0 {
		fresh, err := c.client.EmbedTexts(ctx, missingTexts)
		if err != nil {
			return nil, err
		}
		for i, idx := range missingIndices {
			results[idx] = fresh[i]
			_ = c.cache.Set(ctx, keys[idx], fresh[i])
		}
	}

	return results, nil
}
