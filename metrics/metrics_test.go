// Copyright © 2021-2025 The Gomon Project.

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zosmac/checkjournal/scan"
	"github.com/zosmac/checkjournal/verdict"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkjournal.prom")
	v := verdict.FromResult(&scan.Result{
		Records:  12,
		Critical: scan.Tally{Count: 3},
		Warning:  scan.Tally{Count: 4},
		Duration: 250 * time.Millisecond,
	})
	require.NoError(t, Write(path, v, time.Unix(1760000000, 0)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)
	assert.Contains(t, text, `checkjournal_matches{severity="critical"} 3`)
	assert.Contains(t, text, `checkjournal_matches{severity="warning"} 4`)
	assert.Contains(t, text, "checkjournal_records_scanned 12\n")
	assert.Contains(t, text, "checkjournal_status 2\n")
	assert.Contains(t, text, "checkjournal_scan_duration_seconds 0.25\n")
	assert.Contains(t, text, "checkjournal_last_run_timestamp_seconds 1.76e+09\n")
	assert.Contains(t, text, "# TYPE checkjournal_status gauge")
}

func TestWriteFailedCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkjournal.prom")
	require.NoError(t, Write(path, verdict.FromError(errors.New("no rules")), time.Now()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "checkjournal_status 3\n")
	assert.NotContains(t, string(b), "checkjournal_matches")
}

func TestWriteUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "checkjournal.prom")
	assert.Error(t, Write(path, verdict.Timeout(time.Second), time.Now()))
}
