package user

import (
	"time"
)

// User 用户实体
// Admin为预留标记:随用户落库,当前没有任何接口据此放行
type User struct {
	ID           uint      `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // 不序列化
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
}
