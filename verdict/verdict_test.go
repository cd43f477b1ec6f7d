// Copyright © 2021-2025 The Gomon Project.

package verdict

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zosmac/checkjournal/journal"
	"github.com/zosmac/checkjournal/scan"
)

func TestFromResult(t *testing.T) {
	tests := []struct {
		name    string
		result  scan.Result
		status  Status
		summary string
	}{
		{
			name:    "critical and warning",
			result:  scan.Result{Records: 9, Critical: scan.Tally{Count: 3}, Warning: scan.Tally{Count: 2}},
			status:  Critical,
			summary: "3 critical, 2 warning line(s) found",
		},
		{
			name:    "critical only",
			result:  scan.Result{Records: 1, Critical: scan.Tally{Count: 1}},
			status:  Critical,
			summary: "1 critical, 0 warning line(s) found",
		},
		{
			name:    "warning only",
			result:  scan.Result{Records: 4, Warning: scan.Tally{Count: 2}},
			status:  Warning,
			summary: "2 warning line(s) found",
		},
		{
			name:    "no matches",
			result:  scan.Result{Records: 4},
			status:  OK,
			summary: "no matches",
		},
		{
			name:    "no output",
			result:  scan.Result{},
			status:  OK,
			summary: "no output",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromResult(&tt.result)
			assert.Equal(t, tt.status, v.Status)
			assert.Equal(t, tt.summary, v.Summary)
			assert.Equal(t, v.Status == OK, tt.result.Critical.Count == 0 && tt.result.Warning.Count == 0)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, OK.ExitCode())
	assert.Equal(t, 1, Warning.ExitCode())
	assert.Equal(t, 2, Critical.ExitCode())
	assert.Equal(t, 3, Unknown.ExitCode())
	assert.Equal(t, 3, Status(7).ExitCode())
	assert.Equal(t, "UNKNOWN", Status(7).String())
}

func TestFromError(t *testing.T) {
	v := FromError(fmt.Errorf("load rules: %w", errors.New("no such file")))
	assert.Equal(t, Unknown, v.Status)
	assert.Equal(t, "load rules: no such file", v.Summary)
	assert.Nil(t, v.Result)
}

func TestTimeout(t *testing.T) {
	v := Timeout(60 * time.Second)
	assert.Equal(t, Unknown, v.Status)
	assert.Equal(t, "timed out after 60s", v.Summary)
	assert.ErrorIs(t, v.Err, context.DeadlineExceeded)

	assert.Equal(t, "timed out after 1.5s", Timeout(1500*time.Millisecond).Summary)
}

func TestWrite(t *testing.T) {
	r := &scan.Result{
		Records:  8,
		Critical: scan.Tally{Count: 5, Lines: []string{"error 1", "error 2"}, Truncated: true},
		Warning:  scan.Tally{Count: 1, Lines: []string{"warn 1"}},
	}
	var b bytes.Buffer
	require.NoError(t, Write(&b, FromResult(r), Options{Name: "checkjournal"}))
	assert.Equal(t,
		"checkjournal CRITICAL - 5 critical, 1 warning line(s) found\n"+
			"\n*** critical hits (truncated) ***\n\n"+
			"error 1\nerror 2\n"+
			"\n*** warning hits ***\n\n"+
			"warn 1\n",
		b.String(),
	)
}

func TestWriteOK(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, FromResult(&scan.Result{Records: 3}), Options{Name: "checkjournal"}))
	assert.Equal(t, "checkjournal OK - no matches\n", b.String())
}

func TestWriteMaxBytes(t *testing.T) {
	r := &scan.Result{
		Records:  3,
		Critical: scan.Tally{Count: 3, Lines: []string{"error aaaa", "error bbbb", "error cccc"}},
	}
	header := "\n*** critical hits ***\n\n"
	var b bytes.Buffer
	require.NoError(t, Write(&b, FromResult(r), Options{MaxBytes: len(header) + 2*len("error aaaa\n") + 3}))

	status, body, ok := strings.Cut(b.String(), "\n")
	require.True(t, ok)
	assert.Equal(t, "CRITICAL - 3 critical, 0 warning line(s) found", status)
	assert.Equal(t, header+"error aaaa\nerror bbbb\n", body)
}

func TestWriteReaderFailure(t *testing.T) {
	err := &journal.ReaderError{
		Kind:     journal.ErrUnavailable,
		Command:  "journalctl --no-pager",
		ExitCode: 1,
		Stderr:   "No journal files were found.\nAccess denied",
	}
	var b bytes.Buffer
	require.NoError(t, Write(&b, FromError(fmt.Errorf("scan: %w", err)), Options{Name: "checkjournal"}))
	assert.Equal(t,
		"checkjournal UNKNOWN - scan: log reader unavailable: journalctl --no-pager: exit status 1: No journal files were found.\n"+
			"\n*** stderr ***\n"+
			"No journal files were found.\nAccess denied\n",
		b.String(),
	)
}

func TestWriteColor(t *testing.T) {
	var plain, color bytes.Buffer
	v := FromResult(&scan.Result{Records: 1, Warning: scan.Tally{Count: 1, Lines: []string{"warn"}}})
	require.NoError(t, Write(&plain, v, Options{}))
	require.NoError(t, Write(&color, v, Options{Color: true}))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, color.String(), "\x1b[")
	assert.Contains(t, color.String(), "WARNING")
	assert.True(t, strings.HasSuffix(color.String(), "\n*** warning hits ***\n\nwarn\n"))
}

func TestWriteEmptySample(t *testing.T) {
	r := &scan.Result{
		Records:  3,
		Critical: scan.Tally{Count: 3, Truncated: true},
	}
	var b bytes.Buffer
	require.NoError(t, Write(&b, FromResult(r), Options{Name: "checkjournal"}))
	assert.Equal(t,
		"checkjournal CRITICAL - 3 critical, 0 warning line(s) found\n"+
			"\n*** critical hits (truncated) ***\n\n",
		b.String(),
	)
}
