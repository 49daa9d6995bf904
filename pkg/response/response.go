package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码，方便客户端判断错误类型（0表示成功）
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
// 4. HTTP状态码由业务错误码区间映射（见httpStatus），而不是一律200
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := useCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	msg := appErr.Message
	// 内部错误把底层原因透传给调用方（内部系统可接受，便于排查）
	if appErr.Code >= apperrors.ErrCodeInternal && appErr.Err != nil {
		msg = msg + ": " + appErr.Err.Error()
	}

	status := httpStatus(appErr.Code)
	setAuthChallenge(c, status)
	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: msg,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	status := httpStatus(code)
	setAuthChallenge(c, status)
	c.JSON(status, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// setAuthChallenge 401响应按RFC 6750携带认证质询头
func setAuthChallenge(c *gin.Context, status int) {
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
}

// httpStatus 业务错误码 → HTTP状态码
// 区间约定见pkg/errors：
// - 401xx → 401（认证失败）
// - 404xx → 404（资源不存在）
// - 400xx/409xx → 400（业务规则/参数错误）
// - 500xx → 500（服务端错误）
func httpStatus(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code >= 50000:
		return http.StatusInternalServerError
	case code >= 40900 && code < 41000:
		return http.StatusBadRequest
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40100 && code < 40200:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
