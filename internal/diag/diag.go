// Package diag records launch failures to the per-user bootstrapper log.
//
// Recording is best effort: every failure on the way to the log file is
// reported on stderr and dropped, so a broken log never changes the outcome
// of a launch.
package diag

import (
	"bootstrapper/internal/appdata"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Prefix starts every diagnostic line.
	Prefix = "Bootstrapper Error"
	// DirName is the log directory under the local app-data directory.
	DirName = "min-ed-launcher"
	// FileName is the log file inside DirName.
	FileName = "min-ed-launcher.log"
)

// unresolved stands in for the app-data directory in failure reports when it
// could not be resolved.
const unresolved = "<unresolved>"

// Diagnostic is a single launch failure.
type Diagnostic struct {
	Target  string  // executable the launch was aimed at
	Message string  // human-readable reason
	Result  *int64  // raw shell-open result, if known
	Errno   *uint32 // platform error code, if known
}

// Line renders d as it appears in the log.
func (d Diagnostic) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", Prefix, d.Target, d.Message)
	if d.Result != nil {
		fmt.Fprintf(&b, " result: %d", *d.Result)
	}
	if d.Errno != nil {
		fmt.Fprintf(&b, " error: %d", *d.Errno)
	}
	return b.String()
}

// LogPath returns the log file location under the app-data directory dir.
func LogPath(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// Config configures a Recorder.
type Config struct {
	Resolver appdata.Resolver // defaults to appdata.OS
	Stderr   io.Writer        // defaults to os.Stderr
	Logger   *log.Logger      // failure reports; defaults to Stderr
}

// Recorder appends diagnostics to the log file and mirrors them to stderr.
type Recorder struct {
	resolver appdata.Resolver
	stderr   io.Writer
	logger   *log.Logger
}

// NewRecorder creates a Recorder, filling in defaults for unset fields.
func NewRecorder(cfg Config) *Recorder {
	if cfg.Resolver == nil {
		cfg.Resolver = appdata.OS{}
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(cfg.Stderr, "[bootstrapper] ", log.LstdFlags|log.Lmsgprefix)
	}
	return &Recorder{
		resolver: cfg.Resolver,
		stderr:   cfg.Stderr,
		logger:   cfg.Logger,
	}
}

// Record mirrors d to stderr, then appends it to the log. It never fails;
// problems with the log are reported on stderr and otherwise ignored.
func (r *Recorder) Record(d Diagnostic) {
	line := d.Line()
	fmt.Fprintln(r.stderr, line)

	if path, err := r.Append(line); err != nil {
		r.logger.Printf("Couldn't write to %s: %v", path, err)
	}
}

// Path resolves the log file location. On error the returned path has a
// placeholder in place of the app-data directory.
func (r *Recorder) Path() (string, error) {
	dir, err := r.resolver.LocalAppData()
	if err != nil {
		return LogPath(unresolved), errors.Wrap(err, "resolve local app data")
	}
	if dir == "" {
		return LogPath(unresolved), errors.New("resolve local app data: empty path")
	}
	return LogPath(dir), nil
}

// Append writes line to the log file, creating the directory chain and the
// file as needed. It returns the path it tried, even on error.
func (r *Recorder) Append(line string) (string, error) {
	path, err := r.Path()
	if err != nil {
		return path, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, errors.Wrap(err, "create log directory")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return path, errors.Wrap(err, "open log")
	}
	defer file.Close()

	if _, err := io.WriteString(file, line+"\n"); err != nil {
		return path, errors.Wrap(err, "write log entry")
	}
	return path, nil
}
