//go:build !windows

package shellexec

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// dispatched is reported for a successful start. Any value at or above
// SuccessThreshold would do.
const dispatched = 42

// Result codes mirrored from the ShellExecute table.
const (
	resultOutOfResources = 0
	resultFileNotFound   = 2
	resultAccessDenied   = 5
	resultBadFormat      = 11
)

type posixOpener struct {
	// exeDir is searched before PATH, like ShellExecute searches the
	// directory of the calling application.
	exeDir func() (string, error)
}

func newSystemOpener() Opener {
	return posixOpener{exeDir: executableDir}
}

func executableDir() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(self), nil
}

// Open resolves req.File and starts it without waiting for it. req.Params is
// split with the Windows command-line rules and handed to the process as its
// argument vector; no shell is involved. The verb and show state have no
// POSIX equivalent.
func (o posixOpener) Open(req Request) Outcome {
	path, err := o.resolve(req.File)
	if err != nil {
		return lookupFailure(err)
	}

	cmd := exec.Command(path, splitCommandLine(req.Params)...)
	cmd.Dir = req.Dir

	if err := cmd.Start(); err != nil {
		return startFailure(err)
	}
	_ = cmd.Process.Release()

	return Outcome{Result: dispatched}
}

// resolve finds file next to the running executable, then on PATH.
// A file with a directory component is used as given.
func (o posixOpener) resolve(file string) (string, error) {
	if !strings.ContainsRune(file, filepath.Separator) && o.exeDir != nil {
		if dir, err := o.exeDir(); err == nil {
			if path, err := exec.LookPath(filepath.Join(dir, file)); err == nil {
				return path, nil
			}
		}
	}
	return exec.LookPath(file)
}

func lookupFailure(err error) Outcome {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return Outcome{Result: resultFileNotFound, Errno: syscall.ENOENT}
	case errors.Is(err, fs.ErrPermission):
		return Outcome{Result: resultAccessDenied, Errno: syscall.EACCES}
	default:
		return Outcome{Result: resultOutOfResources, Errno: errnoOf(err)}
	}
}

func startFailure(err error) Outcome {
	errno := errnoOf(err)
	switch errno {
	case syscall.ENOENT:
		return Outcome{Result: resultFileNotFound, Errno: errno}
	case syscall.EACCES, syscall.EPERM:
		return Outcome{Result: resultAccessDenied, Errno: errno}
	case syscall.ENOEXEC:
		return Outcome{Result: resultBadFormat, Errno: errno}
	default:
		return Outcome{Result: resultOutOfResources, Errno: errno}
	}
}

func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
