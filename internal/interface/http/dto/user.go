package dto

// RegisterRequest HTTP注册请求
// 密码强度(8-20位,含字母和数字)由领域服务校验
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=100" example:"张三"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd1"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"passw0rd1"`
}
