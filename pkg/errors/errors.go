package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（HTTP状态码由Code所属区间推导）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较
// 领域错误每次构造时消息不同(带ID/ISBN),但错误码固定,
// 因此 errors.Is(err, author.ErrAuthorNotFound) 只比较Code
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus 根据错误码区间返回HTTP状态码
// 400xx → 400, 404xx → 404, 409xx → 409, 其余 → 500
func (e *AppError) HTTPStatus() int {
	return StatusOf(e.Code)
}

// StatusOf 错误码 → HTTP状态码
func StatusOf(code int) int {
	switch code / 100 {
	case 400:
		return http.StatusBadRequest
	case 404:
		return http.StatusNotFound
	case 409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// InvalidParams 包装参数校验错误
func InvalidParams(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParams,
		Message: err.Error(),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 参数错误
// - 404xx: 资源不存在
// - 409xx: 唯一性冲突、关联约束冲突
// - 500xx: 服务端错误（数据库异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误
	ErrCodeBindError     = 40001 // 参数绑定失败

	// 资源错误（40400-40499）
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在

	// 冲突错误（40900-40999）
	ErrCodeAuthorDuplicate = 40901 // 作者姓名已存在
	ErrCodeISBNDuplicate   = 40902 // ISBN已存在
	ErrCodeAuthorHasBooks  = 40903 // 作者名下仍有图书
)

// ErrInternal 未知异常(panic恢复等)统一返回
var ErrInternal = New(ErrCodeInternal, "internal server error")

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

// IsNotFound 是否为404类错误
func IsNotFound(err error) bool {
	return statusOfErr(err) == http.StatusNotFound
}

// IsConflict 是否为409类错误
func IsConflict(err error) bool {
	return statusOfErr(err) == http.StatusConflict
}

// IsDomainError 是否为业务错误(4xx),业务错误无需按系统故障记录日志
func IsDomainError(err error) bool {
	s := statusOfErr(err)
	return s >= 400 && s < 500
}

func statusOfErr(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus()
}
