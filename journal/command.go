// Copyright © 2021-2025 The Gomon Project.

package journal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/zosmac/checkjournal/core"
)

const (
	// seekFailure is journalctl's diagnostic for a cursor it cannot position to.
	seekFailure = "Failed to seek to cursor"

	// maxStderr bounds the reader diagnostics retained.
	maxStderr = 64 << 10

	// maxLine bounds the length of a record, longer records are truncated.
	maxLine = 1 << 20
)

type (
	// capped retains the first max bytes written to it.
	capped struct {
		buf []byte
		max int
	}
)

// Write appends what fits and discards the rest.
func (c *capped) Write(p []byte) (int, error) {
	if n := min(len(p), c.max-len(c.buf)); n > 0 {
		c.buf = append(c.buf, p[:n]...)
	}
	return len(p), nil
}

// String returns the retained text.
func (c *capped) String() string {
	return string(c.buf)
}

// args builds the reader's command line for the current state.
func (s *Source) args() []string {
	args := []string{"--no-pager"}
	if s.cfg.User {
		args = append(args, "--user")
	}
	if s.state == stateNoMarker && s.cfg.Span > 0 {
		args = append(args, fmt.Sprintf("--since=-%ds", int64(s.cfg.Span/time.Second)))
	}
	if s.marker != nil {
		args = append(args, "--cursor-file="+s.marker.pending)
	}
	return args
}

// decoration reports lines journalctl adds around records, such as "-- No entries --".
func decoration(line string) bool {
	return strings.HasPrefix(line, "-- ") && strings.HasSuffix(line, " --")
}

// readRecord reads the next line of reader output without its line ending. A line longer than
// maxLine is cut to maxLine bytes and the remainder discarded.
func readRecord(rd *bufio.Reader) (string, bool, error) {
	var rec []byte
	truncated := false
	for {
		part, more, err := rd.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(rec) > 0 {
				return string(rec), truncated, nil
			}
			return "", false, err
		}
		if room := maxLine - len(rec); room < len(part) {
			part, truncated = part[:max(room, 0)], true
		}
		rec = append(rec, part...)
		if !more {
			return string(rec), truncated, nil
		}
	}
}

// read runs the reader once, yielding each record it writes. It returns the number of records
// yielded and the classification of the reader's outcome.
func (s *Source) read(ctx context.Context, yield func(string, error) bool) (int, error) {
	rctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(rctx, s.executable, s.args()...)
	cmd.WaitDelay = time.Second
	stderr := &capped{max: maxStderr}
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, core.Error("StdoutPipe", err)
	}

	core.LogDebug(fmt.Errorf("running %s", cmd.String()))
	if err := cmd.Start(); err != nil {
		return 0, &ReaderError{
			Kind:     ErrUnavailable,
			Command:  cmd.String(),
			ExitCode: -1,
			Err:      err,
		}
	}

	rd := bufio.NewReaderSize(stdout, 64<<10)
	var readErr error
	n := 0
	stopped := false
	for {
		line, truncated, err := readRecord(rd)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			break
		}
		if line == "" || decoration(line) {
			continue
		}
		if truncated {
			core.LogWarn(fmt.Errorf("record %d truncated to %d bytes", n+1, maxLine))
		}
		n++
		if !yield(strings.ToValidUTF8(line, "\uFFFD"), nil) {
			stopped = true
			break
		}
	}
	if stopped || readErr != nil {
		cancel() // terminate the reader, its remaining output is not wanted
	}
	waitErr := cmd.Wait()

	if stopped {
		return n, errStopped
	}

	rerr := &ReaderError{
		Command:  cmd.String(),
		ExitCode: -1,
		Stderr:   stderr.String(),
	}
	if cmd.ProcessState != nil {
		rerr.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		rerr.Kind, rerr.Err = ErrPartialOutput, ctx.Err()
	case readErr != nil:
		rerr.Kind, rerr.Err = ErrPartialOutput, readErr
	case waitErr != nil && !errors.As(waitErr, &exitErr):
		rerr.Kind, rerr.Err = ErrPartialOutput, waitErr
	case rerr.ExitCode < 0: // killed by a signal
		rerr.Kind, rerr.Err = ErrPartialOutput, waitErr
	case (rerr.ExitCode == 0 || rerr.ExitCode == 1) && (n > 0 || strings.TrimSpace(rerr.Stderr) == ""):
		if rerr.Stderr != "" {
			core.LogWarn(fmt.Errorf("%s: %s", s.cfg.Executable, strings.TrimSpace(rerr.Stderr)))
		}
		return n, nil
	case rerr.ExitCode != 0 && strings.Contains(rerr.Stderr, seekFailure):
		rerr.Kind, rerr.Err = ErrStaleMarker, waitErr
	default:
		rerr.Kind, rerr.Err = ErrUnavailable, waitErr
	}
	return n, rerr
}
