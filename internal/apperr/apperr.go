package apperr

import (
	"errors"
	"fmt"
)

// 领域错误哨兵值,由handler层统一映射为HTTP状态码
var (
	ErrNotFound             = errors.New("资源不存在")
	ErrForbidden            = errors.New("没有操作权限")
	ErrConflict             = errors.New("资源已存在")
	ErrUnauthenticated      = errors.New("未认证")
	ErrInvalidCredential    = errors.New("凭证无效")
	ErrUnsupportedMediaType = errors.New("不支持的文件类型")
	ErrTooLarge             = errors.New("文件超过大小限制")
)

// ValidationError 校验错误,携带面向客户端的消息
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation 创建校验错误
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation 判断是否为校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
