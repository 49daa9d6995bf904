package catalog

import (
	"context"
	"time"
)

// 货架的固定条数(与前端首页布局对应)
const (
	recommendedShelfSize = 8
	popularShelfSize     = 8
	onSaleShelfSize      = 10
)

// Service 目录查询引擎
// 设计说明:
// 1. 过滤/排序/分页语义的唯一事实来源:所有图书列表接口都经过Query
// 2. 每次查询按当前日期重新判定折扣有效性,不依赖后台任务下架过期折扣
type Service interface {
	// Query 目录查询:过滤 → 计算定价/评分 → 剔除低于评分下限 → 排序 → 分页
	Query(ctx context.Context, params QueryParams) ([]*BookSummary, error)

	// GetBook 单本图书详情,不存在返回ErrBookNotFound
	GetBook(ctx context.Context, id uint) (*BookSummary, error)

	// Recommended 推荐货架:平均评分降序,实际售价升序,最多8本
	Recommended(ctx context.Context) ([]*BookSummary, error)

	// Popular 热门货架:评论数降序,实际售价升序,最多8本
	Popular(ctx context.Context) ([]*BookSummary, error)

	// OnSale 特价货架:仅有折扣的图书,优惠金额降序,最多10本
	OnSale(ctx context.Context) ([]*BookSummary, error)

	// ByCategory 按分类查询全部图书,按ID稳定排序,不分页
	ByCategory(ctx context.Context, categoryID uint) ([]*BookSummary, error)

	// ByAuthor 按作者查询全部图书,按ID稳定排序,不分页
	ByAuthor(ctx context.Context, authorID uint) ([]*BookSummary, error)

	// ListAuthors / GetAuthor / ListCategories / GetCategory 基础档案查询
	ListAuthors(ctx context.Context) ([]*Author, error)
	GetAuthor(ctx context.Context, id uint) (*Author, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id uint) (*Category, error)
}

// service 目录查询引擎实现
type service struct {
	repo   Repository
	policy PricingPolicy
	now    func() time.Time // 可注入的时钟,测试用
}

// NewService 创建目录查询引擎
func NewService(repo Repository, policy PricingPolicy) Service {
	return &service{
		repo:   repo,
		policy: policy,
		now:    time.Now,
	}
}

// Query 目录查询
func (s *service) Query(ctx context.Context, params QueryParams) ([]*BookSummary, error) {
	// 排序方式必须合法(空值由调用方先填默认值)
	if _, err := ParseSortKey(string(params.Sort)); err != nil {
		return nil, err
	}

	items, err := s.load(ctx, params.Filter)
	if err != nil {
		return nil, err
	}

	items = filterByRating(items, params.Filter.MinRating)
	sortSummaries(items, params.Sort)
	return paginate(items, params.Limit, params.Offset), nil
}

// GetBook 单本图书详情
func (s *service) GetBook(ctx context.Context, id uint) (*BookSummary, error) {
	rec, err := s.repo.FindBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summarize(rec), nil
}

// Recommended 推荐货架
func (s *service) Recommended(ctx context.Context) ([]*BookSummary, error) {
	items, err := s.load(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	sortSummaries(items, sortRatingDesc)
	return paginate(items, recommendedShelfSize, 0), nil
}

// Popular 热门货架
func (s *service) Popular(ctx context.Context) ([]*BookSummary, error) {
	items, err := s.load(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	sortSummaries(items, SortPopularDesc)
	return paginate(items, popularShelfSize, 0), nil
}

// OnSale 特价货架
func (s *service) OnSale(ctx context.Context) ([]*BookSummary, error) {
	items, err := s.load(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	discounted := make([]*BookSummary, 0, len(items))
	for _, it := range items {
		if it.HasDiscount {
			discounted = append(discounted, it)
		}
	}

	sortSummaries(discounted, SortDiscountDesc)
	return paginate(discounted, onSaleShelfSize, 0), nil
}

// ByCategory 按分类查询
func (s *service) ByCategory(ctx context.Context, categoryID uint) ([]*BookSummary, error) {
	items, err := s.load(ctx, Filter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	sortByID(items)
	return items, nil
}

// ByAuthor 按作者查询
func (s *service) ByAuthor(ctx context.Context, authorID uint) ([]*BookSummary, error) {
	items, err := s.load(ctx, Filter{AuthorID: authorID})
	if err != nil {
		return nil, err
	}
	sortByID(items)
	return items, nil
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindAuthorByID(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindCategoryByID(ctx, id)
}

// load 取数并逐本计算定价/评分派生字段
func (s *service) load(ctx context.Context, filter Filter) ([]*BookSummary, error) {
	records, err := s.repo.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*BookSummary, len(records))
	for i, rec := range records {
		items[i] = s.summarize(rec)
	}
	return items, nil
}

// summarize BookRecord → BookSummary(定价解析 + 评分聚合)
func (s *service) summarize(rec *BookRecord) *BookSummary {
	quote := ResolvePrice(rec.Book.Price, rec.Discounts, s.now(), s.policy)
	avg, count := AggregateRating(rec.Ratings)

	active := make([]ActiveDiscount, len(quote.Active))
	for i, d := range quote.Active {
		active[i] = ActiveDiscount{Price: d.Price, EndDate: d.EndDate}
	}

	return &BookSummary{
		Book:           rec.Book,
		Author:         rec.Author,
		Discounts:      active,
		FinalPrice:     quote.FinalPrice,
		DiscountAmount: quote.DiscountAmount,
		HasDiscount:    quote.HasDiscount,
		AvgRating:      avg,
		ReviewCount:    count,
	}
}

// filterByRating 剔除平均评分低于下限的图书
// minRating为0时全部保留(包括零评论图书)
func filterByRating(items []*BookSummary, minRating float64) []*BookSummary {
	if minRating <= 0 {
		return items
	}
	kept := make([]*BookSummary, 0, len(items))
	for _, it := range items {
		if it.AvgRating >= minRating {
			kept = append(kept, it)
		}
	}
	return kept
}

// sortByID 仅按图书ID升序(无排序要求的列表保证稳定输出)
func sortByID(items []*BookSummary) {
	sortSummaries(items, SortKey(""))
}
