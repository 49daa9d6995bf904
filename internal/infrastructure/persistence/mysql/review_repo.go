package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookworm/internal/domain/review"
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// reviewRepository 评论仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// ListByBook 查询某本图书的全部评论
// 统计口径需要全量数据,过滤与分页由领域层处理
func (r *reviewRepository) ListByBook(ctx context.Context, bookID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, nil
}

// Create 写入评论
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID:    rv.BookID,
		UserID:    rv.UserID,
		Title:     rv.Title,
		Details:   rv.Details,
		Rating:    rv.Rating,
		CreatedAt: rv.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	rv.ID = model.ID
	return nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		BookID:    model.BookID,
		UserID:    model.UserID,
		Title:     model.Title,
		Details:   model.Details,
		Rating:    model.Rating,
		CreatedAt: model.CreatedAt,
	}
}
