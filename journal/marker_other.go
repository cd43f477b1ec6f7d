// Copyright © 2021-2025 The Gomon Project.

//go:build !unix

package journal

import (
	"errors"
	"os"
)

// writable checks that dir is a directory. Permissions are only known when the marker is written.
func writable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("not a directory")
	}
	return nil
}
