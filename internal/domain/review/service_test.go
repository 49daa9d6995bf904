package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	reviews []*Review
	nextID  uint
}

func (f *fakeRepo) ListByBook(_ context.Context, bookID uint) ([]*Review, error) {
	var out []*Review
	for _, r := range f.reviews {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, r *Review) error {
	f.nextID++
	r.ID = f.nextID
	f.reviews = append(f.reviews, r)
	return nil
}

var base = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

// rev 构造测试评论,day控制创建时间先后
func rev(id uint, rating string, day int) *Review {
	return &Review{
		ID:        id,
		BookID:    1,
		Title:     "title",
		Rating:    rating,
		CreatedAt: base.AddDate(0, 0, day),
	}
}

// fixture 图书1的6条评论(含1条脏数据),图书2的1条评论
func fixture() *fakeRepo {
	return &fakeRepo{
		reviews: []*Review{
			rev(1, "5", 1),
			rev(2, "4", 2),
			rev(3, "4", 3),
			rev(4, "3", 4),
			rev(5, "oops", 5),
			rev(6, "5", 6),
			{ID: 7, BookID: 2, Title: "other", Rating: "1", CreatedAt: base},
		},
		nextID: 7,
	}
}

func TestListReviews_NewestFirst(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1})
	require.NoError(t, err)

	require.Len(t, page.Items, 6)
	for i := 1; i < len(page.Items); i++ {
		assert.False(t, page.Items[i-1].CreatedAt.Before(page.Items[i].CreatedAt),
			"默认排序应为创建时间降序")
	}
	assert.Equal(t, uint(6), page.Items[0].ID)
}

func TestListReviews_OldestFirst(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1, Sort: SortOldest})
	require.NoError(t, err)

	assert.Equal(t, uint(1), page.Items[0].ID)
	assert.Equal(t, uint(6), page.Items[5].ID)
}

func TestListReviews_Stats(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1})
	require.NoError(t, err)

	// 可解析评分[5,4,4,3,5] 平均4.2;脏数据计入总数但不进统计
	assert.Equal(t, 6, page.TotalCount)
	assert.Equal(t, 4.2, page.AverageRating)
	assert.Equal(t, map[int]int{3: 1, 4: 2, 5: 2}, page.StarCounts)
}

func TestListReviews_StarCountsSumProperty(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1})
	require.NoError(t, err)

	// 星级分布之和 = 可解析的整数星级评论数(本例5条,脏数据1条不计)
	sum := 0
	for star, n := range page.StarCounts {
		assert.GreaterOrEqual(t, star, 1)
		assert.LessOrEqual(t, star, 5)
		assert.Positive(t, n, "零计数的星级不应出现在结果中")
		sum += n
	}
	assert.Equal(t, 5, sum)
}

func TestListReviews_StarFilter(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1, Star: 4})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	for _, r := range page.Items {
		assert.Equal(t, "4", r.Rating)
	}
	assert.Equal(t, 2, page.TotalCount, "总数应为过滤后分页前的数量")

	// 统计不受星级过滤影响
	assert.Equal(t, 4.2, page.AverageRating)
	assert.Equal(t, map[int]int{3: 1, 4: 2, 5: 2}, page.StarCounts)
}

func TestListReviews_Pagination(t *testing.T) {
	svc := NewService(fixture())

	full, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1})
	require.NoError(t, err)

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1, Limit: 2, Offset: 1})
	require.NoError(t, err)

	// 分页必须作用于排序后的结果
	require.Len(t, page.Items, 2)
	assert.Equal(t, full.Items[1].ID, page.Items[0].ID)
	assert.Equal(t, full.Items[2].ID, page.Items[1].ID)
	assert.Equal(t, 6, page.TotalCount, "分页不改变总数")
}

func TestListReviews_DefaultLimit(t *testing.T) {
	repo := &fakeRepo{}
	for i := 1; i <= 15; i++ {
		repo.reviews = append(repo.reviews, rev(uint(i), "5", i))
	}
	svc := NewService(repo)

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1})
	require.NoError(t, err)

	// 未指定limit时每页10条,总数仍为全量
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 15, page.TotalCount)
}

func TestListReviews_OffsetBeyondEnd(t *testing.T) {
	svc := NewService(fixture())

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 1, Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 6, page.TotalCount)
}

func TestListReviews_NoReviews(t *testing.T) {
	svc := NewService(&fakeRepo{})

	page, err := svc.ListReviews(context.Background(), QueryParams{BookID: 99})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 0.0, page.AverageRating)
	assert.Empty(t, page.StarCounts)
}

func TestCreateReview(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	r, err := svc.CreateReview(context.Background(), NewReview{
		BookID: 1,
		UserID: 10,
		Title:  "好书",
		Rating: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "5", r.Rating, "评分应以字符串形式落库")
	require.NotNil(t, r.UserID)
	assert.Equal(t, uint(10), *r.UserID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Len(t, repo.reviews, 1)
}

func TestCreateReview_InvalidRating(t *testing.T) {
	svc := NewService(&fakeRepo{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), NewReview{
			BookID: 1,
			UserID: 10,
			Title:  "t",
			Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "评分: %d", rating)
	}
}

func TestCreateReview_InvalidTitle(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreateReview(context.Background(), NewReview{
		BookID: 1,
		UserID: 10,
		Title:  "   ",
		Rating: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidReview)

	long := make([]rune, 121)
	for i := range long {
		long[i] = '长'
	}
	_, err = svc.CreateReview(context.Background(), NewReview{
		BookID: 1,
		UserID: 10,
		Title:  string(long),
		Rating: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidReview)
}
