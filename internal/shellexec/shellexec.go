// Package shellexec asks the operating system shell to open an executable,
// the way double-clicking it would, and reports the raw outcome.
//
// On Windows this is ShellExecuteW. Elsewhere the file is resolved through
// PATH and handed to /bin/sh so the parameter string is split the same way
// a Windows command line would be.
package shellexec

import (
	"syscall"
)

// SuccessThreshold is the smallest result ShellExecute returns on success.
// Anything below it is one of the SE_ERR_* codes.
const SuccessThreshold = 33

// ShowNormal is SW_SHOWNORMAL.
const ShowNormal int32 = 1

// VerbOpen is the default shell verb.
const VerbOpen = "open"

// Request describes a single shell-open call.
type Request struct {
	Verb   string // empty means the default verb
	File   string // resolved by the OS search rules when not absolute
	Params string // passed through untouched
	Dir    string // empty means inherit
	Show   int32
}

// Outcome is what the shell-open call returned.
type Outcome struct {
	Result int64         // raw HINSTANCE-style result
	Errno  syscall.Errno // platform last-error, 0 if none
}

// Failed reports whether the call could not dispatch the target.
func (o Outcome) Failed() bool {
	return o.Result < SuccessThreshold
}

// Message is the human-readable reason for a failed outcome. The platform
// message wins; the result-code table covers calls that left no last-error.
func (o Outcome) Message() string {
	if o.Errno != 0 {
		return o.Errno.Error()
	}
	return Describe(o.Result)
}

// Opener performs shell-open calls.
type Opener interface {
	Open(req Request) Outcome
}

// System returns the Opener backed by the running platform.
func System() Opener {
	return newSystemOpener()
}
