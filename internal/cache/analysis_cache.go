package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"promptlens/internal/model"
)

const keyPrefix = "analysis:"

// AnalysisCache stores finished analyses keyed by a content hash of the
// prompt, so repeated analyses of identical text skip the AI backend.
type AnalysisCache interface {
	Get(ctx context.Context, prompt string) (*model.AnalysisResult, error)
	Set(ctx context.Context, prompt string, result *model.AnalysisResult) error
	Stats(ctx context.Context) (*model.CacheStats, error)
	Clear(ctx context.Context) error
}

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(client *redis.Client, ttl time.Duration) AnalysisCache {
	return &analysisCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives the cache key for a prompt
func Key(prompt string) string {
	sum := md5.Sum([]byte(prompt))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (c *analysisCache) Get(ctx context.Context, prompt string) (*model.AnalysisResult, error) {
	data, err := c.client.Get(ctx, Key(prompt)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *analysisCache) Set(ctx context.Context, prompt string, result *model.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(prompt), data, c.ttl).Err()
}

func (c *analysisCache) Stats(ctx context.Context) (*model.CacheStats, error) {
	keys, err := c.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}
	return &model.CacheStats{Entries: int64(len(keys))}, nil
}

func (c *analysisCache) Clear(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
