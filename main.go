// Copyright © 2021-2025 The Gomon Project.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zosmac/checkjournal/config"
	"github.com/zosmac/checkjournal/core"
	"github.com/zosmac/checkjournal/journal"
	"github.com/zosmac/checkjournal/metrics"
	"github.com/zosmac/checkjournal/rules"
	"github.com/zosmac/checkjournal/scan"
	"github.com/zosmac/checkjournal/verdict"
)

// main
func main() {
	core.Main(Main)
}

// Main called from core.Main. It returns the monitoring plugin exit status.
func Main(ctx context.Context) int {
	s := flags.Settings
	if core.Flags.NArg() > 0 {
		s.Rules = core.Flags.Arg(0)
	}

	var v verdict.Verdict
	if err := config.Load(flags.settingsFile, &s, explicit); err != nil {
		core.LogError(err)
		v = verdict.FromError(err)
	} else {
		core.LogDebug(fmt.Errorf(
			"start %s %s command %q",
			core.CommandName(),
			core.Version(),
			strings.Join(os.Args, " "),
		))
		v = check(ctx, s)
	}

	if s.Metricsfile != "" {
		if err := metrics.Write(s.Metricsfile, v, time.Now()); err != nil {
			core.LogWarn(err)
		}
	}

	if err := verdict.Write(os.Stdout, v, verdict.Options{
		Name:     core.CommandName(),
		MaxBytes: s.Bytes,
		Color:    s.Color && core.IsTerminal(os.Stdout),
	}); err != nil {
		core.LogError(core.Error("write report", err))
	}

	return v.Status.ExitCode()
}

// explicit reports whether the command line set a setting, which the settings file then leaves alone.
func explicit(key string) bool {
	if key == "rules" {
		return core.Flags.NArg() > 0
	}
	return core.Flags.IsSet(key)
}

// check loads the rules, scans the journal, and grades the result, all within the timeout.
func check(ctx context.Context, s config.Settings) verdict.Verdict {
	if strings.TrimSpace(s.Rules) == "" {
		return verdict.FromError(core.Error("rules", errors.New("no rule file specified")))
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	rs, err := rules.Load(ctx, s.Rules)
	if err != nil {
		return failed(ctx, s, err)
	}
	for _, sev := range rules.Severities {
		patterns, exceptions := rs.Len(sev)
		core.LogDebug(fmt.Errorf("%s rules: %d patterns, %d exceptions", sev, patterns, exceptions))
	}

	src, err := journal.Open(journal.Config{
		Executable: s.Journalctl,
		Span:       s.Span,
		User:       s.User,
		Marker:     s.Statefile,
	})
	if err != nil {
		return failed(ctx, s, core.Error("open journal", err))
	}

	limit := s.Lines
	if limit < 0 {
		limit = scan.NoLimit
	}
	r, err := scan.Session{Rules: rs, Limit: limit}.Run(ctx, src)
	if err != nil {
		return failed(ctx, s, core.Error("scan journal", err))
	}

	return verdict.FromResult(r)
}

// failed logs the error and converts it to a verdict. Errors caused by the deadline report the timeout.
func failed(ctx context.Context, s config.Settings, err error) verdict.Verdict {
	core.LogError(err)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return verdict.Timeout(s.Timeout)
	}
	return verdict.FromError(err)
}
