// Copyright © 2021-2025 The Gomon Project.

/*
Package journal reads the records appended to the systemd journal since the previous run of the
command.

A Source runs journalctl as a subprocess and streams its output one line at a time. The position
reached is kept in a marker file holding journalctl's opaque cursor. During a run journalctl
reads and updates a pending copy of the marker, which replaces the marker only when the caller
commits after consuming every record. A run that fails or is abandoned leaves the marker as it
was, so its records are delivered again by the next run.

A marker that journalctl rejects, for instance one written by a different journal format, is
discarded once per run and the configured span of recent records is read instead.
*/
package journal
