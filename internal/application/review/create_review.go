package review

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/catalog"
	"github.com/xiebiao/bookworm/internal/domain/review"
	"github.com/xiebiao/bookworm/pkg/metrics"
)

// CreateReviewUseCase 创建评论用例
type CreateReviewUseCase struct {
	reviewService review.Service
	catalogRepo   catalog.Repository
}

// NewCreateReviewUseCase 创建评论用例
func NewCreateReviewUseCase(reviewService review.Service, catalogRepo catalog.Repository) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewService: reviewService,
		catalogRepo:   catalogRepo,
	}
}

// CreateReviewRequest 创建评论请求
type CreateReviewRequest struct {
	BookID  uint
	UserID  uint // 从JWT中提取
	Title   string
	Details string
	Rating  int // 1-5
}

// Execute 执行创建评论
// 图书不存在返回ErrBookNotFound,评分超出范围返回ErrInvalidRating
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*review.Review, error) {
	if _, err := uc.catalogRepo.FindBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	r, err := uc.reviewService.CreateReview(ctx, review.NewReview{
		BookID:  req.BookID,
		UserID:  req.UserID,
		Title:   req.Title,
		Details: req.Details,
		Rating:  req.Rating,
	})
	if err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return r, nil
}
