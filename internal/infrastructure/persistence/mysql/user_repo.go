package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookworm/internal/domain/user"
	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// userRepository 用户仓储实现(MySQL)
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 写入用户
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		FullName: u.FullName,
		Email:    u.Email,
		Password: u.PasswordHash,
		Admin:    u.Admin,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 邮箱唯一索引冲突转换为业务错误
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	return nil
}

// FindByEmail 按邮箱查询用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// FindByID 按ID查询用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// toUserEntity GORM模型 → 领域实体
func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:           model.ID,
		FullName:     model.FullName,
		Email:        model.Email,
		PasswordHash: model.Password,
		Admin:        model.Admin,
		CreatedAt:    model.CreatedAt,
	}
}
