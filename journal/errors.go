// Copyright © 2021-2025 The Gomon Project.

package journal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable reports that the reader could not be started or failed.
	ErrUnavailable = errors.New("log reader unavailable")

	// ErrStaleMarker reports that the reader rejected the resume marker.
	ErrStaleMarker = errors.New("resume marker rejected")

	// ErrPartialOutput reports that the reader's output was not read completely.
	ErrPartialOutput = errors.New("log reader output incomplete")

	// ErrConsumed reports a second iteration of a Source's records.
	ErrConsumed = errors.New("records already consumed")

	// errNotConsumed reports a commit before the records were read to the end.
	errNotConsumed = errors.New("records not fully consumed")

	// errStopped reports that the consumer ended the iteration early.
	errStopped = errors.New("iteration stopped")
)

type (
	// ReaderError describes a failed reader invocation.
	ReaderError struct {
		// Kind is one of ErrUnavailable, ErrStaleMarker, or ErrPartialOutput.
		Kind     error
		Command  string
		ExitCode int
		// Stderr holds the reader's diagnostic output, truncated.
		Stderr string
		Err    error
	}
)

// Error method to comply with error interface
func (err *ReaderError) Error() string {
	var b strings.Builder
	b.WriteString(err.Kind.Error())
	if err.Command != "" {
		fmt.Fprintf(&b, ": %s", err.Command)
	}
	if err.ExitCode > 0 {
		fmt.Fprintf(&b, ": exit status %d", err.ExitCode)
	} else if err.Err != nil {
		fmt.Fprintf(&b, ": %v", err.Err)
	}
	if line, _, _ := strings.Cut(strings.TrimSpace(err.Stderr), "\n"); line != "" {
		fmt.Fprintf(&b, ": %s", line)
	}
	return b.String()
}

// Is matches the kind of failure.
func (err *ReaderError) Is(target error) bool {
	return target == err.Kind
}

// Unwrap method to comply with error interface
func (err *ReaderError) Unwrap() error {
	return err.Err
}
