package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// 错误类型常量
const (
	ErrTypeEnumeration = "enumeration"
	ErrTypeSignal      = "signal"
	ErrTypeConfig      = "config"
	ErrTypeInvalidArg  = "invalid_argument"
	ErrTypePermission  = "permission"
	ErrTypeNotFound    = "not_found"
)

// 进程退出码
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// AppError 表示应用程序错误
type AppError struct {
	Type    string   `json:"type"`    // 错误类型
	Message string   `json:"message"` // 错误消息
	Cause   error    `json:"-"`       // 原始错误
	Code    int      `json:"-"`       // 进程退出码
	Stack   []string `json:"-"`       // 错误堆栈
	RunID   string   `json:"run_id,omitempty"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) String() string {
	return e.Error()
}

// Unwrap 实现 errors.Unwrap 接口，用于错误链
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithStack 添加堆栈信息到错误
func (e *AppError) WithStack() *AppError {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	e.Stack = stack
	return e
}

// WithRunID 关联一次清理运行的 ID
func (e *AppError) WithRunID(runID string) *AppError {
	e.RunID = runID
	return e
}

// New 创建新的应用错误
func New(errType, message string, cause error, code int) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// Wrap 包装现有错误为 AppError
func Wrap(err error, errType, message string, code int) *AppError {
	if err == nil {
		return nil
	}

	// 如果已经是 AppError，保留原始类型但更新消息
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Type:    appErr.Type,
			Message: message,
			Cause:   appErr.Cause,
			Code:    appErr.Code,
			Stack:   appErr.Stack,
			RunID:   appErr.RunID,
		}
	}

	return New(errType, message, err, code)
}

// Is 检查错误是否为特定类型
func Is(err error, errType string) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}

	return false
}

// GetType 获取错误类型
func GetType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return "unknown"
}

// ExitCode 获取错误对应的进程退出码
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return ExitFailure
}

// RootCause 获取错误链中的根本原因
func RootCause(err error) error {
	for err != nil {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
	return err
}

// InvalidArg 无效参数错误
func InvalidArg(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid arg: %s", param), nil, ExitUsage).WithStack()
}

// Config 创建配置错误
func Config(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause, ExitUsage).WithStack()
}

// Usage 命令行用法错误（多余的参数、未知的 flag）
func Usage(cause error) *AppError {
	return New(ErrTypeInvalidArg, "invalid usage", cause, ExitUsage)
}
