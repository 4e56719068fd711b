package errors

import (
	"fmt"
)

// EnumerationFailed 进程表获取失败，整个运行中止
func EnumerationFailed(cause error) *AppError {
	return New(ErrTypeEnumeration, "failed to list processes", cause, ExitFailure).WithStack()
}

// SignalFailed 单个进程信号发送失败，不中止运行
func SignalFailed(pid int32, cause error) *AppError {
	return New(ErrTypeSignal, fmt.Sprintf("failed to kill process %d", pid), cause, ExitFailure).WithStack()
}

// ProcessGone 目标进程在枚举与发信号之间已退出
func ProcessGone(pid int32, cause error) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("process %d no longer exists", pid), cause, ExitFailure).WithStack()
}

// SignalDenied 无权向目标进程发送信号
func SignalDenied(pid int32, cause error) *AppError {
	return New(ErrTypePermission, fmt.Sprintf("not permitted to kill process %d", pid), cause, ExitFailure).WithStack()
}

// ConfigInvalid 创建配置无效错误
func ConfigInvalid(field string, cause error) *AppError {
	return New(ErrTypeConfig, fmt.Sprintf("invalid configuration: %s", field), cause, ExitUsage).WithStack()
}

// RequiredParam 缺少必要参数
func RequiredParam(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("required parameter missing: %s", param), nil, ExitUsage).WithStack()
}
