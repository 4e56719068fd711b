//go:build unix

package process

import (
	stderrors "errors"
	"os"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"
)

func isGone(err error) bool {
	return stderrors.Is(err, process.ErrorProcessNotRunning) ||
		stderrors.Is(err, os.ErrProcessDone) ||
		stderrors.Is(err, unix.ESRCH)
}

func isDenied(err error) bool {
	return stderrors.Is(err, unix.EPERM) || stderrors.Is(err, os.ErrPermission)
}
