// Copyright © 2021-2025 The Gomon Project.

// Package verdict condenses a scan into a monitoring status and renders the report.
package verdict

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/zosmac/checkjournal/journal"
	"github.com/zosmac/checkjournal/scan"
)

type (
	// Status is the monitoring plugin status, ordered by severity.
	Status int

	// Verdict is the outcome of a check.
	Verdict struct {
		Status  Status
		Summary string
		// Result is set when the scan completed.
		Result *scan.Result
		// Err is set when the check failed.
		Err error
	}
)

const (
	OK Status = iota
	Warning
	Critical
	Unknown
)

// String returns the status keyword.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

// ExitCode returns the process exit status for the status.
func (s Status) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}
	return int(s)
}

// FromResult grades a completed scan by its most severe match.
func FromResult(r *scan.Result) Verdict {
	v := Verdict{Result: r}
	switch c, w := r.Critical.Count, r.Warning.Count; {
	case c > 0:
		v.Status = Critical
		v.Summary = fmt.Sprintf("%d critical, %d warning line(s) found", c, w)
	case w > 0:
		v.Status = Warning
		v.Summary = fmt.Sprintf("%d warning line(s) found", w)
	case r.Records == 0:
		v.Summary = "no output"
	default:
		v.Summary = "no matches"
	}
	return v
}

// FromError reports a check that could not complete.
func FromError(err error) Verdict {
	return Verdict{
		Status:  Unknown,
		Summary: err.Error(),
		Err:     err,
	}
}

// Timeout reports a check abandoned after d.
func Timeout(d time.Duration) Verdict {
	return Verdict{
		Status:  Unknown,
		Summary: "timed out after " + strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s",
		Err:     context.DeadlineExceeded,
	}
}

// stderr returns the diagnostics of a failed reader.
func (v Verdict) stderr() string {
	var rerr *journal.ReaderError
	if errors.As(v.Err, &rerr) {
		return rerr.Stderr
	}
	return ""
}
