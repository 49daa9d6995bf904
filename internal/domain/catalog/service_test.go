package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存仓储,模拟SQL侧的等值过滤
type fakeRepo struct {
	records []*BookRecord
}

func (f *fakeRepo) ListBooks(_ context.Context, filter Filter) ([]*BookRecord, error) {
	var out []*BookRecord
	for _, r := range f.records {
		if filter.AuthorID != 0 && r.Book.AuthorID != filter.AuthorID {
			continue
		}
		if filter.CategoryID != 0 && r.Book.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) FindBookByID(_ context.Context, id uint) (*BookRecord, error) {
	for _, r := range f.records {
		if r.Book.ID == id {
			return r, nil
		}
	}
	return nil, ErrBookNotFound
}

func (f *fakeRepo) ListAuthors(context.Context) ([]*Author, error)     { return nil, nil }
func (f *fakeRepo) FindAuthorByID(context.Context, uint) (*Author, error) {
	return nil, ErrAuthorNotFound
}
func (f *fakeRepo) ListCategories(context.Context) ([]*Category, error) { return nil, nil }
func (f *fakeRepo) FindCategoryByID(context.Context, uint) (*Category, error) {
	return nil, ErrCategoryNotFound
}

// newTestService 固定时钟的查询引擎
func newTestService(records []*BookRecord) Service {
	return &service{
		repo:   &fakeRepo{records: records},
		policy: PricingPolicy{},
		now:    func() time.Time { return now },
	}
}

// rec 构造测试用BookRecord
func rec(id uint, price int64, discountPrice int64, ratings ...string) *BookRecord {
	r := &BookRecord{
		Book:   Book{ID: id, Title: "book", Price: price, AuthorID: 1, CategoryID: 1},
		Author: Author{ID: 1, Name: "author"},
	}
	if discountPrice > 0 {
		r.Discounts = []Discount{{ID: id, BookID: id, Price: discountPrice}}
	}
	r.Ratings = ratings
	return r
}

// fixture 5本图书:
// 1: 定价2000 折后1500 (优惠500)  评分[5,5]
// 2: 定价1000 无折扣              评分[4]
// 3: 定价3000 折后2900 (优惠100)  评分[3,3,3]
// 4: 定价1200 无折扣              无评论
// 5: 定价1800 折后 600 (优惠1200) 评分[2]
func fixture() []*BookRecord {
	return []*BookRecord{
		rec(1, 2000, 1500, "5", "5"),
		rec(2, 1000, 0, "4"),
		rec(3, 3000, 2900, "3", "3", "3"),
		rec(4, 1200, 0),
		rec(5, 1800, 600, "2"),
	}
}

func TestQuery_FinalPriceOrdering(t *testing.T) {
	svc := newTestService(fixture())

	t.Run("升序结果单调不减", func(t *testing.T) {
		items, err := svc.Query(context.Background(), QueryParams{Sort: SortFinalPriceAsc})
		require.NoError(t, err)
		require.Len(t, items, 5)

		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].FinalPrice, items[i].FinalPrice)
		}
		// 600, 1000, 1200, 1500, 2900
		assert.Equal(t, uint(5), items[0].Book.ID)
		assert.Equal(t, uint(3), items[4].Book.ID)
	})

	t.Run("降序结果单调不增", func(t *testing.T) {
		items, err := svc.Query(context.Background(), QueryParams{Sort: SortFinalPriceDesc})
		require.NoError(t, err)

		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].FinalPrice, items[i].FinalPrice)
		}
	})
}

func TestQuery_DiscountDesc(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Query(context.Background(), QueryParams{Sort: SortDiscountDesc})
	require.NoError(t, err)
	require.Len(t, items, 5)

	// 有折扣的图书必须全部排在无折扣图书之前,与价格无关
	seenUndiscounted := false
	for _, it := range items {
		if !it.HasDiscount {
			seenUndiscounted = true
		} else {
			assert.False(t, seenUndiscounted, "有折扣图书不应出现在无折扣图书之后")
		}
	}

	// 优惠金额降序: 5(1200) → 1(500) → 3(100)
	assert.Equal(t, uint(5), items[0].Book.ID)
	assert.Equal(t, uint(1), items[1].Book.ID)
	assert.Equal(t, uint(3), items[2].Book.ID)
}

func TestQuery_PopularDesc(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Query(context.Background(), QueryParams{Sort: SortPopularDesc})
	require.NoError(t, err)

	// 评论数: 3(3条) → 1(2条) → 2/5(各1条,按售价升序:2=1000在前,5=600在前…)
	// 实际售价: 2→1000, 5→600,同为1条评论时售价升序 ⇒ 5在2之前
	assert.Equal(t, uint(3), items[0].Book.ID)
	assert.Equal(t, uint(1), items[1].Book.ID)
	assert.Equal(t, uint(5), items[2].Book.ID)
	assert.Equal(t, uint(2), items[3].Book.ID)
	assert.Equal(t, uint(4), items[4].Book.ID)
	assert.Equal(t, 3, items[0].ReviewCount)
}

func TestQuery_MinRatingFilter(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Query(context.Background(), QueryParams{
		Filter: Filter{MinRating: 4},
		Sort:   SortFinalPriceAsc,
	})
	require.NoError(t, err)

	// 平均分>=4: 图书1(5.0)与图书2(4.0);零评论图书平均分0被剔除
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].Book.ID)
	assert.Equal(t, uint(1), items[1].Book.ID)
}

func TestQuery_Pagination(t *testing.T) {
	svc := newTestService(fixture())

	full, err := svc.Query(context.Background(), QueryParams{Sort: SortFinalPriceAsc})
	require.NoError(t, err)
	require.Len(t, full, 5)

	page, err := svc.Query(context.Background(), QueryParams{
		Sort:   SortFinalPriceAsc,
		Limit:  2,
		Offset: 1,
	})
	require.NoError(t, err)

	// limit=2, offset=1 必须恰好等于完整排序结果的[1:3)
	require.Len(t, page, 2)
	assert.Equal(t, full[1].Book.ID, page[0].Book.ID)
	assert.Equal(t, full[2].Book.ID, page[1].Book.ID)
}

func TestQuery_OffsetBeyondEnd(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Query(context.Background(), QueryParams{
		Sort:   SortFinalPriceAsc,
		Offset: 100,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQuery_InvalidSortKey(t *testing.T) {
	svc := newTestService(fixture())

	_, err := svc.Query(context.Background(), QueryParams{Sort: SortKey("newest")})
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestQuery_UnknownAuthorYieldsEmpty(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Query(context.Background(), QueryParams{
		Filter: Filter{AuthorID: 999},
		Sort:   SortFinalPriceAsc,
	})
	require.NoError(t, err)
	assert.Empty(t, items, "引用不存在的作者应返回空集而不是错误")
}

func TestGetBook_NotFound(t *testing.T) {
	svc := newTestService(fixture())

	_, err := svc.GetBook(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestGetBook_Summary(t *testing.T) {
	svc := newTestService(fixture())

	item, err := svc.GetBook(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1500), item.FinalPrice)
	assert.Equal(t, int64(500), item.DiscountAmount)
	assert.True(t, item.HasDiscount)
	assert.Equal(t, 5.0, item.AvgRating)
	assert.Equal(t, 2, item.ReviewCount)
}

func TestRecommended(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.Recommended(context.Background())
	require.NoError(t, err)

	// 平均评分降序: 1(5.0) → 2(4.0) → 3(3.0) → 5(2.0) → 4(0)
	require.Len(t, items, 5)
	assert.Equal(t, uint(1), items[0].Book.ID)
	assert.Equal(t, uint(2), items[1].Book.ID)
	assert.Equal(t, uint(4), items[4].Book.ID)
}

func TestRecommended_ShelfLimit(t *testing.T) {
	var records []*BookRecord
	for i := uint(1); i <= 12; i++ {
		records = append(records, rec(i, 1000, 0, "4"))
	}
	svc := newTestService(records)

	items, err := svc.Recommended(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 8, "推荐货架最多8本")
}

func TestOnSale(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.OnSale(context.Background())
	require.NoError(t, err)

	// 仅含有折扣的图书,优惠金额降序
	require.Len(t, items, 3)
	assert.Equal(t, uint(5), items[0].Book.ID)
	assert.Equal(t, uint(1), items[1].Book.ID)
	assert.Equal(t, uint(3), items[2].Book.ID)
	for _, it := range items {
		assert.True(t, it.HasDiscount)
	}
}

func TestByCategory_StableIDOrder(t *testing.T) {
	svc := newTestService(fixture())

	items, err := svc.ByCategory(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].Book.ID, items[i].Book.ID)
	}
}
