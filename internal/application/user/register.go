package user

import (
	"context"

	"github.com/xiebiao/bookworm/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
}

// Execute 执行注册
// 邮箱格式/密码强度/邮箱重复的校验由领域服务完成
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, user.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}, nil
}

// UserInfo 用户信息DTO
type UserInfo struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
