package user

import (
	"context"
)

// Repository 用户仓储接口
type Repository interface {
	// Create 写入用户,邮箱唯一冲突返回ErrEmailDuplicate
	Create(ctx context.Context, u *User) error

	// FindByEmail 按邮箱查询,不存在返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID 按ID查询,不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)
}
