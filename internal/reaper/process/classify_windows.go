//go:build windows

package process

import (
	stderrors "errors"
	"os"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"
)

// OpenProcess 对不存在的 PID 返回 ERROR_INVALID_PARAMETER
func isGone(err error) bool {
	return stderrors.Is(err, process.ErrorProcessNotRunning) ||
		stderrors.Is(err, os.ErrProcessDone) ||
		stderrors.Is(err, windows.ERROR_INVALID_PARAMETER)
}

func isDenied(err error) bool {
	return stderrors.Is(err, windows.ERROR_ACCESS_DENIED) || stderrors.Is(err, os.ErrPermission)
}
