package user

import (
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.ErrUserNotFound

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.ErrEmailDuplicate

	// ErrInvalidPassword 邮箱或密码错误(登录失败统一提示,不区分具体原因)
	ErrInvalidPassword = apperrors.ErrInvalidPassword

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.ErrWeakPassword

	// ErrInvalidEmail 邮箱格式错误
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式错误")
)
