package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码，成功时为0，方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时省略
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（200）
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
// HTTP状态码由错误码区间决定：404xx→404, 409xx→409, 400xx→400, 其余→500
// 用法：
//
//	author, err := h.service.GetAuthorByID(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只写日志，不返回给客户端
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Int("code", appErr.Code).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(apperrors.StatusOf(code), Response{
		Code:    code,
		Message: message,
	})
}

// AbortWithError 中止后续处理并返回错误（中间件使用）
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
