package catalog

import (
	"sort"
)

// SortKey 目录排序方式
type SortKey string

const (
	// SortDiscountDesc 折扣优先:有折扣在前,优惠金额降序,实际售价升序
	SortDiscountDesc SortKey = "discount_desc"

	// SortPopularDesc 热门优先:评论数降序,实际售价升序
	SortPopularDesc SortKey = "popular_desc"

	// SortFinalPriceAsc 实际售价升序
	SortFinalPriceAsc SortKey = "final_price_asc"

	// SortFinalPriceDesc 实际售价降序
	SortFinalPriceDesc SortKey = "final_price_desc"

	// sortRatingDesc 平均评分降序(仅内部使用,推荐货架)
	sortRatingDesc SortKey = "rating_desc"
)

// ParseSortKey 解析排序参数,未知值返回ErrInvalidSortKey
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortDiscountDesc, SortPopularDesc, SortFinalPriceAsc, SortFinalPriceDesc:
		return SortKey(s), nil
	default:
		return "", ErrInvalidSortKey
	}
}

// Filter 目录过滤条件
// AuthorID/CategoryID为0表示不过滤;Search为空表示不搜索;
// MinRating为0时不剔除任何图书
type Filter struct {
	AuthorID   uint
	CategoryID uint
	Search     string  // 书名或作者名的大小写不敏感子串匹配
	MinRating  float64 // 平均评分下限
}

// QueryParams 目录查询参数
type QueryParams struct {
	Filter Filter
	Sort   SortKey
	Limit  int // <=0 时取DefaultLimit
	Offset int // <0 时取0
}

// DefaultLimit 未指定limit时的默认返回条数
const DefaultLimit = 100

// sortSummaries 对结果集做稳定排序
// 所有排序的末位决胜键都是图书ID升序,保证分页结果确定
func sortSummaries(items []*BookSummary, key SortKey) {
	less := lessFunc(key)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if c := less(a, b); c != 0 {
			return c < 0
		}
		return a.Book.ID < b.Book.ID
	})
}

// lessFunc 返回排序比较器:负数表示a在前,正数表示b在前,0表示按ID决胜
func lessFunc(key SortKey) func(a, b *BookSummary) int {
	switch key {
	case SortDiscountDesc:
		return func(a, b *BookSummary) int {
			if c := cmpBool(b.HasDiscount, a.HasDiscount); c != 0 {
				return c
			}
			if c := cmpInt64(b.DiscountAmount, a.DiscountAmount); c != 0 {
				return c
			}
			return cmpInt64(a.FinalPrice, b.FinalPrice)
		}
	case SortPopularDesc:
		return func(a, b *BookSummary) int {
			if c := cmpInt(b.ReviewCount, a.ReviewCount); c != 0 {
				return c
			}
			return cmpInt64(a.FinalPrice, b.FinalPrice)
		}
	case SortFinalPriceAsc:
		return func(a, b *BookSummary) int {
			return cmpInt64(a.FinalPrice, b.FinalPrice)
		}
	case SortFinalPriceDesc:
		return func(a, b *BookSummary) int {
			return cmpInt64(b.FinalPrice, a.FinalPrice)
		}
	case sortRatingDesc:
		return func(a, b *BookSummary) int {
			if c := cmpFloat(b.AvgRating, a.AvgRating); c != 0 {
				return c
			}
			return cmpInt64(a.FinalPrice, b.FinalPrice)
		}
	default:
		// 不排序,仅按ID稳定
		return func(a, b *BookSummary) int { return 0 }
	}
}

// paginate 完整排序后再切片,offset越界返回空集
func paginate(items []*BookSummary, limit, offset int) []*BookSummary {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset >= len(items) {
		return []*BookSummary{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	return cmpInt64(int64(a), int64(b))
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
