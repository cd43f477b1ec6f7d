// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// TimeFormat used for formatting timestamps.
	TimeFormat = "2006-01-02T15:04:05.000Z07:00"
)

// ExpandPath resolves a leading ~ to the user's home directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", Error("UserHomeDir", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// IsTerminal reports if a file handle is connected to the terminal.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	mode := info.Mode()

	// see https://github.com/golang/go/issues/23123
	if runtime.GOOS == "windows" {
		return mode&os.ModeCharDevice == os.ModeCharDevice
	}

	return mode&(os.ModeDevice|os.ModeCharDevice) == (os.ModeDevice | os.ModeCharDevice)
}
