package catalog

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
)

// BrowseBooksUseCase 图书目录浏览用例
// 设计说明:
// 1. 负责把接口层参数翻译为领域查询,默认排序为折扣优先
// 2. 过滤/排序/分页语义全部由领域服务保证
type BrowseBooksUseCase struct {
	catalogService catalog.Service
}

// NewBrowseBooksUseCase 创建目录浏览用例
func NewBrowseBooksUseCase(catalogService catalog.Service) *BrowseBooksUseCase {
	return &BrowseBooksUseCase{catalogService: catalogService}
}

// BrowseBooksRequest 目录浏览请求
type BrowseBooksRequest struct {
	FilterBy   string  // 排序方式,空值取discount_desc
	AuthorID   uint    // 按作者过滤,0为不过滤
	CategoryID uint    // 按分类过滤,0为不过滤
	Star       float64 // 平均评分下限,0为不过滤
	Search     string  // 书名/作者名搜索
	Limit      int
	Offset     int
}

// Execute 执行目录浏览
func (uc *BrowseBooksUseCase) Execute(ctx context.Context, req BrowseBooksRequest) ([]*catalog.BookSummary, error) {
	sortBy := req.FilterBy
	if sortBy == "" {
		sortBy = string(catalog.SortDiscountDesc)
	}
	sortKey, err := catalog.ParseSortKey(sortBy)
	if err != nil {
		return nil, err
	}

	return uc.catalogService.Query(ctx, catalog.QueryParams{
		Filter: catalog.Filter{
			AuthorID:   req.AuthorID,
			CategoryID: req.CategoryID,
			Search:     req.Search,
			MinRating:  req.Star,
		},
		Sort:   sortKey,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	catalogService catalog.Service
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(catalogService catalog.Service) *GetBookUseCase {
	return &GetBookUseCase{catalogService: catalogService}
}

// Execute 执行图书详情查询,图书不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, bookID uint) (*catalog.BookSummary, error) {
	return uc.catalogService.GetBook(ctx, bookID)
}
