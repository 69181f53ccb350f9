//go:build !windows

package shellexec

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a target script that writes each argument it receives on its
// own line to args, then creates done.
type recorder struct {
	dir  string
	args string
	done string
}

func writeTarget(t *testing.T, dir, name string) recorder {
	t.Helper()
	out := t.TempDir()
	r := recorder{
		dir:  dir,
		args: filepath.Join(out, "args.txt"),
		done: filepath.Join(out, "done"),
	}
	script := "#!/bin/sh\nfor a in \"$@\"; do printf '%s\\n' \"$a\"; done > '" + r.args + "'\n: > '" + r.done + "'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755))
	return r
}

// onPath installs the target in a fresh directory that becomes the whole PATH.
func onPath(t *testing.T, name string) recorder {
	t.Helper()
	bin := t.TempDir()
	t.Setenv("PATH", bin)
	return writeTarget(t, bin, name)
}

func (r recorder) received(t *testing.T) []string {
	t.Helper()
	require.Eventually(t, func() bool {
		_, err := os.Stat(r.done)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	data, err := os.ReadFile(r.args)
	require.NoError(t, err)
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// noSibling is an opener that never finds the target next to itself.
func noSibling(t *testing.T) posixOpener {
	dir := t.TempDir()
	return posixOpener{exeDir: func() (string, error) { return dir, nil }}
}

func TestPosixOpenerDispatches(t *testing.T) {
	target := onPath(t, "MinEdLauncher.exe")

	outcome := noSibling(t).Open(Request{
		Verb:   VerbOpen,
		File:   "MinEdLauncher.exe",
		Params: "/autoquit /nosound",
		Show:   ShowNormal,
	})
	require.False(t, outcome.Failed(), "outcome: %+v", outcome)
	assert.Equal(t, int64(dispatched), outcome.Result)
	assert.Equal(t, []string{"/autoquit", "/nosound"}, target.received(t))
}

func TestPosixOpenerNoParams(t *testing.T) {
	target := onPath(t, "MinEdLauncher.exe")

	outcome := noSibling(t).Open(Request{File: "MinEdLauncher.exe"})
	require.False(t, outcome.Failed())
	assert.Nil(t, target.received(t))
}

func TestPosixOpenerPassesShellSyntaxLiterally(t *testing.T) {
	target := onPath(t, "MinEdLauncher.exe")
	marker := filepath.Join(t.TempDir(), "created")

	outcome := noSibling(t).Open(Request{
		File:   "MinEdLauncher.exe",
		Params: `/frontier $HOME "$(touch ` + marker + `)" ` + "`id`",
	})
	require.False(t, outcome.Failed())

	assert.Equal(t, []string{"/frontier", "$HOME", "$(touch " + marker + ")", "`id`"}, target.received(t))
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "command substitution must not run")
}

func TestPosixOpenerQuotedSpaces(t *testing.T) {
	target := onPath(t, "MinEdLauncher.exe")

	outcome := noSibling(t).Open(Request{
		File:   "MinEdLauncher.exe",
		Params: `/frontier "Profile Name" /vr`,
	})
	require.False(t, outcome.Failed())
	assert.Equal(t, []string{"/frontier", "Profile Name", "/vr"}, target.received(t))
}

func TestPosixOpenerPrefersSibling(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	self := t.TempDir()
	target := writeTarget(t, self, "MinEdLauncher.exe")

	opener := posixOpener{exeDir: func() (string, error) { return self, nil }}
	outcome := opener.Open(Request{File: "MinEdLauncher.exe", Params: "/edo"})
	require.False(t, outcome.Failed(), "outcome: %+v", outcome)
	assert.Equal(t, []string{"/edo"}, target.received(t))
}

func TestPosixOpenerFileNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	outcome := noSibling(t).Open(Request{File: "MinEdLauncher.exe"})
	assert.True(t, outcome.Failed())
	assert.Equal(t, int64(resultFileNotFound), outcome.Result)
	assert.Equal(t, syscall.ENOENT, outcome.Errno)
}

func TestPosixOpenerAccessDenied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MinEdLauncher.exe")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))

	outcome := System().Open(Request{File: path})
	assert.True(t, outcome.Failed())
	assert.Equal(t, int64(resultAccessDenied), outcome.Result)
	assert.Equal(t, syscall.EACCES, outcome.Errno)
}

func TestPosixOpenerBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MinEdLauncher.exe")
	require.NoError(t, os.WriteFile(path, []byte("MZ not an elf image\n"), 0o755))

	outcome := System().Open(Request{File: path})
	assert.True(t, outcome.Failed())
	assert.Equal(t, int64(resultBadFormat), outcome.Result)
	assert.Equal(t, syscall.ENOEXEC, outcome.Errno)
}
