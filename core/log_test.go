// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorNil(t *testing.T) {
	assert.NoError(t, Error("open", nil))
}

func TestErrorAnnotates(t *testing.T) {
	base := errors.New("boom")
	err := Error("read rules", base)
	require.Error(t, err)

	assert.Equal(t, "read rules: boom", err.Error())
	assert.ErrorIs(t, err, base)

	var e *Err
	require.ErrorAs(t, err, &e)
	assert.True(t, strings.HasPrefix(e.Where(), "core/log_test.go:"), e.Where())
}

func TestErrorPercolates(t *testing.T) {
	inner := Error("inner", errors.New("boom"))
	outer := Error("outer", inner)
	assert.Same(t, inner, outer)
}

func TestErrorErrno(t *testing.T) {
	_, err := os.Open("/nonexistent/checkjournal")
	err = Error("open", err)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "errno "+strconv.Itoa(int(syscall.ENOENT)))
}
