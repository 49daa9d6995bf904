package user

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterInput 注册参数
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Service 用户注册与认证
type Service interface {
	// Register 注册用户:校验邮箱格式与密码强度,bcrypt加密后落库
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// Authenticate 校验邮箱密码,失败统一返回ErrInvalidPassword
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID 按ID查询用户
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail 按邮箱查询用户
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 注册用户
func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !isStrongPassword(input.Password) {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 校验邮箱密码
// 用户不存在与密码错误返回同一个错误,避免暴露邮箱是否已注册
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// isStrongPassword 密码强度:8-20位,同时包含字母和数字
func isStrongPassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
