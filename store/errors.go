package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 操作引用了不存在的记录
	ErrNotFound = errors.New("记录不存在")
	// ErrNoSession 缺少可用身份（未登录且未匿名登录）
	ErrNoSession = errors.New("未认证，请先登录")
)

// ValidationError 用户输入不合法，拒绝本次操作且不产生任何写入
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建校验错误
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation 判断是否为校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BackendError 底层存储调用失败（网络/可用性）
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("存储操作失败 [%s]: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// backendErr 包装底层存储错误
func backendErr(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
