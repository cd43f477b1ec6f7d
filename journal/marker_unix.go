// Copyright © 2021-2025 The Gomon Project.

//go:build unix

package journal

import (
	"golang.org/x/sys/unix"
)

// writable checks that files may be created in dir.
func writable(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
