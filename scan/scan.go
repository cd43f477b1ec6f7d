// Copyright © 2021-2025 The Gomon Project.

// Package scan classifies the records of a log source and tallies the matches by severity.
package scan

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/zosmac/checkjournal/core"
	"github.com/zosmac/checkjournal/rules"
)

type (
	// Source supplies records and stores the position reached once they have been read.
	Source interface {
		Records(context.Context) iter.Seq2[string, error]
		Commit() error
	}

	// Session applies rules to every record of a source.
	Session struct {
		Rules *rules.RuleSet
		// Limit caps the lines sampled per severity. NoLimit retains every line.
		Limit int
	}

	// Tally accumulates the matches of one severity.
	Tally struct {
		// Count is the number of matching records, sampled or not.
		Count int
		// Lines samples the matching records in the order read.
		Lines []string
		// Truncated reports that matching records were left out of Lines.
		Truncated bool
	}

	// Result summarizes a scan.
	Result struct {
		Records  int
		Critical Tally
		Warning  Tally
		Duration time.Duration
	}
)

// NoLimit disables the sample cap.
const NoLimit = -1

// Tally returns the tally for a severity.
func (r *Result) Tally(sev rules.Severity) *Tally {
	switch sev {
	case rules.Critical:
		return &r.Critical
	case rules.Warning:
		return &r.Warning
	}
	return nil
}

// add counts a matching line, sampling it while the limit permits.
func (t *Tally) add(line string, limit int) {
	t.Count++
	if limit < 0 || len(t.Lines) < limit {
		t.Lines = append(t.Lines, line)
	} else {
		t.Truncated = true
	}
}

// Run reads the source to the end, classifying each record. Only after every record has been
// read is the source committed. A retrieval or commit failure returns an error and no result.
func (s Session) Run(ctx context.Context, src Source) (*Result, error) {
	if s.Rules == nil {
		return nil, core.Error("scan", errors.New("no rules"))
	}

	start := time.Now()
	r := &Result{}
	for line, err := range src.Records(ctx) {
		if err != nil {
			return nil, err
		}
		r.Records++
		o := s.Rules.Classify(line)
		if !o.Matched() {
			if o.Exception != "" {
				core.LogTrace(fmt.Errorf("%q matched %q, excepted by %q", line, o.Pattern, o.Exception))
			}
			continue
		}
		r.Tally(o.Severity).add(line, s.Limit)
	}

	if err := src.Commit(); err != nil {
		return nil, err
	}
	r.Duration = time.Since(start)

	core.LogDebug(fmt.Errorf(
		"scanned %d records, %d critical, %d warning in %v",
		r.Records,
		r.Critical.Count,
		r.Warning.Count,
		r.Duration,
	))
	return r, nil
}
