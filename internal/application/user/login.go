package user

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookworm/internal/domain/user"
	"github.com/xiebiao/bookworm/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookworm/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 验证邮箱密码
// 2. 生成JWT Token对(subject为邮箱)
// 3. 保存会话到Redis
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration // 与Refresh Token有效期一致
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"login_at": time.Now().Unix(),
	}
	// 会话保存失败不影响登录,只记录日志
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.sessionTTL); err != nil {
		log.Printf("保存会话失败 user_id=%d err=%v", u.ID, err)
	}

	return &LoginResponse{
		User: UserInfo{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 用户登出用例
// 将当前Access Token加入黑名单,防止在过期前继续使用
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
	tokenTTL     time.Duration // 与Access Token有效期一致
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore, tokenTTL time.Duration) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		tokenTTL:     tokenTTL,
	}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, uc.tokenTTL)
}

// GetMeUseCase 当前用户信息用例
type GetMeUseCase struct {
	userService user.Service
}

// NewGetMeUseCase 创建当前用户信息用例
func NewGetMeUseCase(userService user.Service) *GetMeUseCase {
	return &GetMeUseCase{userService: userService}
}

// Execute 按Token中的用户ID查询用户信息
func (uc *GetMeUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}, nil
}
