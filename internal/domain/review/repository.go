package review

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	// ListByBook 查询某本图书的全部评论(统计需要全量数据,过滤分页在Service中做)
	ListByBook(ctx context.Context, bookID uint) ([]*Review, error)

	// Create 写入评论
	Create(ctx context.Context, r *Review) error
}
