//go:build windows

package appdata

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func localAppData() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
	if err != nil {
		return "", errors.Wrap(err, "known folder LocalAppData")
	}
	return dir, nil
}
