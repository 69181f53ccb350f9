// Package bootstrap implements the launcher shim. It hands its arguments to
// MinEdLauncher.exe through the OS shell and records the failure when the
// shell cannot dispatch it.
package bootstrap

import (
	"bootstrapper/internal/diag"
	"bootstrapper/internal/shellexec"
	"strings"
)

// DefaultTarget is the executable the bootstrapper launches.
const DefaultTarget = "MinEdLauncher.exe"

// Recorder persists launch failures.
type Recorder interface {
	Record(d diag.Diagnostic)
}

// Config configures a Launcher. Zero fields get production defaults.
type Config struct {
	Target   string
	Opener   shellexec.Opener
	Recorder Recorder
}

// Launcher forwards arguments to the target executable.
type Launcher struct {
	target   string
	opener   shellexec.Opener
	recorder Recorder
}

// New creates a Launcher.
func New(cfg Config) *Launcher {
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.Opener == nil {
		cfg.Opener = shellexec.System()
	}
	if cfg.Recorder == nil {
		cfg.Recorder = diag.NewRecorder(diag.Config{})
	}
	return &Launcher{
		target:   cfg.Target,
		opener:   cfg.Opener,
		recorder: cfg.Recorder,
	}
}

// Run launches the default target with args and returns the exit code.
func Run(args []string) int {
	return New(Config{}).Run(args)
}

// Run launches the target with args and returns the exit code, which is
// always 0. Failures are only visible in the log.
func (l *Launcher) Run(args []string) int {
	l.Launch(args)
	return 0
}

// Launch asks the shell to open the target with args joined into a single
// parameter string. A failed outcome is recorded before it is returned.
func (l *Launcher) Launch(args []string) shellexec.Outcome {
	out := l.opener.Open(shellexec.Request{
		Verb:   shellexec.VerbOpen,
		File:   l.target,
		Params: JoinArgs(args),
		Show:   shellexec.ShowNormal,
	})
	if !out.Failed() {
		return out
	}

	result := out.Result
	errno := uint32(out.Errno)
	l.recorder.Record(diag.Diagnostic{
		Target:  l.target,
		Message: out.Message(),
		Result:  &result,
		Errno:   &errno,
	})
	return out
}

// JoinArgs joins args with single spaces, in order.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}
