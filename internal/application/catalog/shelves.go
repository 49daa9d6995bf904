package catalog

import (
	"context"
	"log"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/infrastructure/persistence/redis"
)

// 货架缓存Key
const (
	ShelfRecommended = "recommended"
	ShelfPopular     = "popular"
	ShelfOnSale      = "onsale"
)

// ShelvesUseCase 首页货架用例(Cache-Aside)
// 设计说明:
// 1. 三个货架都是全量图书的排序切片,QPS高、计算重,前置Redis缓存
// 2. 缓存读写失败只记日志,回源结果始终可用
type ShelvesUseCase struct {
	catalogService catalog.Service
	cache          *redis.CatalogCache
}

// NewShelvesUseCase 创建货架用例
func NewShelvesUseCase(catalogService catalog.Service, cache *redis.CatalogCache) *ShelvesUseCase {
	return &ShelvesUseCase{
		catalogService: catalogService,
		cache:          cache,
	}
}

// Recommended 推荐货架
func (uc *ShelvesUseCase) Recommended(ctx context.Context) ([]*catalog.BookSummary, error) {
	return uc.shelf(ctx, ShelfRecommended, uc.catalogService.Recommended)
}

// Popular 热门货架
func (uc *ShelvesUseCase) Popular(ctx context.Context) ([]*catalog.BookSummary, error) {
	return uc.shelf(ctx, ShelfPopular, uc.catalogService.Popular)
}

// OnSale 特价货架
func (uc *ShelvesUseCase) OnSale(ctx context.Context) ([]*catalog.BookSummary, error) {
	return uc.shelf(ctx, ShelfOnSale, uc.catalogService.OnSale)
}

// shelf 缓存优先取货架,未命中回源并写回
func (uc *ShelvesUseCase) shelf(
	ctx context.Context,
	name string,
	load func(ctx context.Context) ([]*catalog.BookSummary, error),
) ([]*catalog.BookSummary, error) {
	if uc.cache != nil {
		if items, err := uc.cache.GetShelf(ctx, name); err != nil {
			log.Printf("货架缓存读取失败 shelf=%s err=%v", name, err)
		} else if items != nil {
			return items, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetShelf(ctx, name, items); err != nil {
			log.Printf("货架缓存写入失败 shelf=%s err=%v", name, err)
		}
	}
	return items, nil
}
