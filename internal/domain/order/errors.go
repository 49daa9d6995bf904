package order

import (
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在(或不属于当前用户,对外不区分)
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")
)
