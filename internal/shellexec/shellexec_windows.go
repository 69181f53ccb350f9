//go:build windows

package shellexec

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// windows.ShellExecute only returns an error, so the raw result is read
// straight from the proc.
var (
	modshell32        = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteW = modshell32.NewProc("ShellExecuteW")
)

type systemOpener struct{}

func newSystemOpener() Opener {
	return systemOpener{}
}

func (systemOpener) Open(req Request) Outcome {
	if err := procShellExecuteW.Find(); err != nil {
		return Outcome{Result: 0, Errno: errnoOf(err)}
	}

	verb, err := utf16PtrOrNil(req.Verb)
	if err != nil {
		return Outcome{Result: 0, Errno: errnoOf(err)}
	}
	file, err := utf16PtrOrNil(req.File)
	if err != nil {
		return Outcome{Result: 0, Errno: errnoOf(err)}
	}
	params, err := utf16PtrOrNil(req.Params)
	if err != nil {
		return Outcome{Result: 0, Errno: errnoOf(err)}
	}
	dir, err := utf16PtrOrNil(req.Dir)
	if err != nil {
		return Outcome{Result: 0, Errno: errnoOf(err)}
	}

	r1, _, e1 := procShellExecuteW.Call(
		0,
		uintptr(unsafe.Pointer(verb)),
		uintptr(unsafe.Pointer(file)),
		uintptr(unsafe.Pointer(params)),
		uintptr(unsafe.Pointer(dir)),
		uintptr(req.Show),
	)
	out := Outcome{Result: int64(r1)}
	if out.Failed() {
		out.Errno = errnoOf(e1)
	}
	return out
}

func utf16PtrOrNil(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(s)
}

func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.Errno(windows.ERROR_INVALID_FUNCTION)
}
