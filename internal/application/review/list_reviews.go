package review

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/domain/review"
)

// ListReviewsUseCase 评论查询用例
type ListReviewsUseCase struct {
	reviewService review.Service
	catalogRepo   catalog.Repository
}

// NewListReviewsUseCase 创建评论查询用例
func NewListReviewsUseCase(reviewService review.Service, catalogRepo catalog.Repository) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewService: reviewService,
		catalogRepo:   catalogRepo,
	}
}

// ListReviewsRequest 评论查询请求
type ListReviewsRequest struct {
	BookID     uint
	SortBy     string // newest(默认) / oldest
	RatingStar int    // 0为不过滤
	Limit      int
	Offset     int
}

// Execute 执行评论查询,图书不存在返回ErrBookNotFound
func (uc *ListReviewsUseCase) Execute(ctx context.Context, req ListReviewsRequest) (*review.Page, error) {
	// 先确认图书存在,避免对不存在的图书返回空统计
	if _, err := uc.catalogRepo.FindBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	return uc.reviewService.ListReviews(ctx, review.QueryParams{
		BookID: req.BookID,
		Star:   req.RatingStar,
		Sort:   review.SortOrder(req.SortBy),
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}
