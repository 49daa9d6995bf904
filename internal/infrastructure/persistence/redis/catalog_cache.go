package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/pkg/metrics"
)

// CatalogCache 首页货架缓存(Cache-Aside)
// 设计说明:
// 1. 货架内容由全量图书计算而来,QPS高且变化慢,适合短TTL缓存
// 2. 缓存未命中或Redis异常时直接回源,不影响可用性
// 3. Key设计: shelf:{name}
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache 创建货架缓存
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// GetShelf 读取货架缓存,未命中返回(nil, nil)
func (c *CatalogCache) GetShelf(ctx context.Context, shelf string) ([]*catalog.BookSummary, error) {
	key := shelfKey(shelf)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheHitsTotal.WithLabelValues(shelf, "miss").Inc()
			return nil, nil
		}
		metrics.CatalogCacheHitsTotal.WithLabelValues(shelf, "error").Inc()
		return nil, err
	}

	var items []*catalog.BookSummary
	if err := json.Unmarshal(data, &items); err != nil {
		// 缓存数据损坏当作未命中,回源后覆盖
		metrics.CatalogCacheHitsTotal.WithLabelValues(shelf, "miss").Inc()
		return nil, nil
	}

	metrics.CatalogCacheHitsTotal.WithLabelValues(shelf, "hit").Inc()
	return items, nil
}

// SetShelf 写入货架缓存
func (c *CatalogCache) SetShelf(ctx context.Context, shelf string, items []*catalog.BookSummary) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, shelfKey(shelf), data, c.ttl).Err()
}

// InvalidateShelves 删除全部货架缓存(图书/折扣变更后调用)
func (c *CatalogCache) InvalidateShelves(ctx context.Context, shelves ...string) error {
	keys := make([]string, len(shelves))
	for i, s := range shelves {
		keys[i] = shelfKey(s)
	}
	return c.client.Del(ctx, keys...).Err()
}

func shelfKey(shelf string) string {
	return fmt.Sprintf("shelf:%s", shelf)
}
