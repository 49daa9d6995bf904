package review

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// 评论查询默认每页条数
const DefaultLimit = 10

// 评论标题长度上限(字符数)
const maxTitleLen = 120

// SortOrder 评论排序方式
type SortOrder string

const (
	SortNewest SortOrder = "newest" // 创建时间降序(默认)
	SortOldest SortOrder = "oldest" // 创建时间升序
)

// QueryParams 评论查询参数
type QueryParams struct {
	BookID uint
	Star   int // 0表示不过滤;1-5表示只看该星级
	Sort   SortOrder
	Limit  int
	Offset int
}

// NewReview 评论创建参数
type NewReview struct {
	BookID  uint
	UserID  uint
	Title   string
	Details string
	Rating  int
}

// Service 评论查询与写入
// 设计说明:
// 1. 统计字段(平均分/星级分布)始终按全量评论计算,星级过滤只作用于列表
// 2. 分页在排序之后进行,保证同一排序下翻页结果可拼接
type Service interface {
	// ListReviews 查询评论:过滤 → 排序 → 分页,并返回全量统计
	ListReviews(ctx context.Context, params QueryParams) (*Page, error)

	// CreateReview 创建评论,评分必须为1-5的整数
	CreateReview(ctx context.Context, input NewReview) (*Review, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建评论服务
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// ListReviews 查询评论
func (s *service) ListReviews(ctx context.Context, params QueryParams) (*Page, error) {
	all, err := s.repo.ListByBook(ctx, params.BookID)
	if err != nil {
		return nil, err
	}

	// 全量统计先算,不受星级过滤影响
	avg := averageRating(all)
	stars := starCounts(all)

	filtered := filterByStar(all, params.Star)
	sortReviews(filtered, params.Sort)

	total := len(filtered)
	items := paginate(filtered, params.Limit, params.Offset)

	return &Page{
		Items:         items,
		TotalCount:    total,
		AverageRating: avg,
		StarCounts:    stars,
	}, nil
}

// CreateReview 创建评论
func (s *service) CreateReview(ctx context.Context, input NewReview) (*Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return nil, ErrInvalidReview
	}

	userID := input.UserID
	r := &Review{
		BookID:    input.BookID,
		UserID:    &userID,
		Title:     title,
		Details:   input.Details,
		Rating:    strconv.Itoa(input.Rating),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// averageRating 全量平均分,保留1位小数
// 无法解析的评分同时从分子分母排除;没有可解析评分时返回0
func averageRating(reviews []*Review) float64 {
	var sum float64
	var n int
	for _, r := range reviews {
		if v, ok := parseRating(r.Rating); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

// starCounts 各星级评论数,只输出计数非零的星级
// 非整数或超出1-5范围的评分不落入任何星级
func starCounts(reviews []*Review) map[int]int {
	counts := make(map[int]int)
	for _, r := range reviews {
		v, ok := parseRating(r.Rating)
		if !ok {
			continue
		}
		star := int(v)
		if float64(star) != v || star < 1 || star > 5 {
			continue
		}
		counts[star]++
	}
	return counts
}

// filterByStar 按星级精确过滤,star为0时不过滤
func filterByStar(reviews []*Review, star int) []*Review {
	if star == 0 {
		return reviews
	}
	kept := make([]*Review, 0, len(reviews))
	for _, r := range reviews {
		if v, ok := parseRating(r.Rating); ok && v == float64(star) {
			kept = append(kept, r)
		}
	}
	return kept
}

// sortReviews 按创建时间排序,时间相同按ID排序保证输出稳定
func sortReviews(reviews []*Review, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(reviews, func(i, j int) bool {
			if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
				return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
			}
			return reviews[i].ID < reviews[j].ID
		})
	default:
		sort.SliceStable(reviews, func(i, j int) bool {
			if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
				return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
			}
			return reviews[i].ID > reviews[j].ID
		})
	}
}

// paginate 先offset后limit,越界返回空切片
func paginate(reviews []*Review, limit, offset int) []*Review {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(reviews) {
		return []*Review{}
	}
	end := offset + limit
	if end > len(reviews) {
		end = len(reviews)
	}
	return reviews[offset:end]
}

// parseRating 评分文本解析,空白与前后空格视为脏数据
func parseRating(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
