package catalog

import (
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.ErrAuthorNotFound

	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.ErrCategoryNotFound

	// ErrInvalidSortKey 无效的排序方式
	ErrInvalidSortKey = apperrors.ErrInvalidSortKey
)
