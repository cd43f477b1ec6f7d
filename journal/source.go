// Copyright © 2021-2025 The Gomon Project.

package journal

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"strings"

	"github.com/zosmac/checkjournal/core"
)

type (
	// state of a Source's retrieval.
	state int

	// Source yields the journal records appended since the last committed run.
	Source struct {
		cfg        Config
		executable string
		marker     *marker
		state      state
		recovered  bool
		consumed   bool
		committed  bool
		err        error
	}
)

const (
	stateNoMarker   state = iota // read the span, record a new position
	stateSeeking                 // resume from the marker
	stateRecovering              // marker rejected, discard it
	stateDone                    // all records read
	stateFailed                  // retrieval abandoned
)

// String returns the state name.
func (st state) String() string {
	switch st {
	case stateNoMarker:
		return "no marker"
	case stateSeeking:
		return "seeking"
	case stateRecovering:
		return "recovering"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(st))
}

// Open resolves the reader executable and validates the marker location.
func Open(cfg Config) (*Source, error) {
	if cfg.Executable == "" {
		cfg.Executable = DefaultExecutable
	}
	executable, err := exec.LookPath(cfg.Executable)
	if err != nil {
		return nil, &ReaderError{
			Kind:     ErrUnavailable,
			Command:  cfg.Executable,
			ExitCode: -1,
			Err:      err,
		}
	}

	s := &Source{
		cfg:        cfg,
		executable: executable,
	}
	if strings.TrimSpace(cfg.Marker) != "" {
		if s.marker, err = newMarker(cfg.Marker); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Records returns the records not yet committed, in the order the reader emits them. The
// sequence may be iterated once. A retrieval failure is yielded as the final error.
func (s *Source) Records(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if s.consumed {
			yield("", ErrConsumed)
			return
		}
		s.consumed = true

		if err := s.begin(); err != nil {
			s.fail(err)
			yield("", s.err)
			return
		}

		for {
			switch s.state {
			case stateNoMarker, stateSeeking:
				n, err := s.read(ctx, yield)
				s.next(n, err)
			case stateRecovering:
				core.LogWarn(fmt.Errorf("discarding resume marker %s rejected by %s", s.marker.path, s.cfg.Executable))
				s.recovered = true
				if err := s.marker.reset(); err != nil {
					s.fail(core.Error("reset marker", err))
					break
				}
				s.state = stateNoMarker
			case stateDone:
				return
			case stateFailed:
				if !errors.Is(s.err, errStopped) {
					yield("", s.err)
				}
				return
			}
		}
	}
}

// begin determines the initial state from the stored marker.
func (s *Source) begin() error {
	if s.marker == nil {
		s.state = stateNoMarker
		return nil
	}
	cursor, err := s.marker.load()
	if err != nil {
		return core.Error("read marker", err)
	}
	if cursor == nil {
		s.state = stateNoMarker
		if err := s.marker.reset(); err != nil {
			return core.Error("reset marker", err)
		}
		return nil
	}
	s.state = stateSeeking
	if err := s.marker.stage(cursor); err != nil {
		return core.Error("stage marker", err)
	}
	return nil
}

// next transitions after a reader invocation that yielded n records.
func (s *Source) next(n int, err error) {
	from := s.state
	switch {
	case err == nil:
		s.state = stateDone
	case from == stateSeeking && n == 0 && !s.recovered && errors.Is(err, ErrStaleMarker):
		s.state = stateRecovering
	case s.recovered:
		s.fail(fmt.Errorf("%w, retry without marker failed: %w", ErrStaleMarker, err))
	default:
		s.fail(err)
	}
	core.LogDebug(fmt.Errorf("journal %s -> %s after %d records", from, s.state, n))
}

// fail abandons retrieval, discarding the pending marker.
func (s *Source) fail(err error) {
	s.state = stateFailed
	s.err = err
	if s.marker != nil {
		if err := s.marker.reset(); err != nil {
			core.LogWarn(core.Error("reset marker", err))
		}
	}
}

// Commit stores the position reached so the next run resumes after the records read. It fails
// unless the records were read to the end without error. Repeated calls have no effect.
func (s *Source) Commit() error {
	if s.committed {
		return nil
	}
	if s.state != stateDone || !s.consumed {
		return core.Error("commit", errNotConsumed)
	}
	if s.marker != nil {
		if err := s.marker.commit(); err != nil {
			return core.Error("commit marker", err)
		}
	}
	s.committed = true
	return nil
}
