package review

import (
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrInvalidRating 评分超出1-5范围
	ErrInvalidRating = apperrors.ErrInvalidRating

	// ErrInvalidReview 评论内容不合法
	ErrInvalidReview = apperrors.New(apperrors.ErrCodeInvalidParams, "评论标题不能为空且不超过120字符")
)
