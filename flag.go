// Copyright © 2021-2025 The Gomon Project.

package main

import (
	"github.com/zosmac/checkjournal/config"
	"github.com/zosmac/checkjournal/core"
)

var (
	// flags defines the command line flags.
	flags = struct {
		config.Settings
		settingsFile string
	}{
		Settings: config.Defaults(),
	}
)

// init initializes the command line flags.
func init() {
	core.Flags.Describe("Reports the journal records since the previous check that match critical or warning rules." +
		" Exits 0 (OK), 1 (WARNING), 2 (CRITICAL), or 3 (UNKNOWN).")

	core.Flags.Var(
		&flags.Journalctl,
		"journalctl",
		"[-journalctl <path>]",
		"The `path` of the journalctl executable",
	)
	core.Flags.Var(
		&flags.Span,
		"span",
		"[-span <duration>]",
		"Without a resume marker, read the journal records of the last `duration`",
	)
	core.Flags.Var(
		&flags.Lines,
		"lines",
		"[-lines <n>]",
		"Show at most `n` matching lines per severity, negative for all",
	)
	core.Flags.Var(
		&flags.Bytes,
		"bytes",
		"[-bytes <n>]",
		"Truncate the report details to `n` bytes, 0 for no limit",
	)
	core.Flags.Var(
		&flags.Timeout,
		"timeout",
		"[-timeout <duration>]",
		"Abandon the check after `duration`",
	)
	core.Flags.Var(
		&flags.Statefile,
		"statefile",
		"[-statefile <path>]",
		"Resume from the journal position saved in `path` by the previous check",
	)
	core.Flags.Var(
		&flags.User,
		"user",
		"[-user]",
		"Read the current user's journal",
	)
	core.Flags.Var(
		&flags.Metricsfile,
		"metricsfile",
		"[-metricsfile <path>]",
		"Write the check's metrics in Prometheus text format to `path`",
	)
	core.Flags.Var(
		&flags.settingsFile,
		"config",
		"[-config <path>]",
		"Read settings from the TOML file at `path`, command line flags take precedence",
	)
	core.Flags.Var(
		&flags.Color,
		"color",
		"[-color]",
		"Highlight the status when writing to a terminal",
	)

	core.Flags.Argument("rules", "The YAML rule file's path or http(s) URL")
}
