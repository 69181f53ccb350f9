//go:build !windows

package appdata

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned when neither XDG_DATA_HOME nor HOME is set.
var ErrUnavailable = errors.New("no per-user data directory: XDG_DATA_HOME and HOME are unset")

func localAppData() (string, error) {
	return fromEnv(os.Getenv)
}

// fromEnv follows the XDG base directory rules for user data.
// Relative XDG_DATA_HOME values are ignored, as the rules require.
func fromEnv(getenv func(string) string) (string, error) {
	if dir := getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share"), nil
	}
	return "", ErrUnavailable
}
