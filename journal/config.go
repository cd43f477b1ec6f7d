// Copyright © 2021-2025 The Gomon Project.

package journal

import "time"

type (
	// Config defines how the reader is invoked.
	Config struct {
		// Executable is the reader's name or path, resolved against PATH by Open.
		Executable string
		// Span bounds how far back a run without a usable marker reads. Zero reads the whole journal.
		Span time.Duration
		// User reads the invoking user's journal rather than the system journal.
		User bool
		// Marker is the path of the resume marker file. Without one every run reads the span.
		Marker string
	}
)

const (
	// DefaultExecutable is the reader used when Config specifies none.
	DefaultExecutable = "journalctl"

	// DefaultSpan is slightly longer than the customary ten minute check interval.
	DefaultSpan = 601 * time.Second
)
