// Copyright © 2021-2025 The Gomon Project.

/*
Package main implements the "checkjournal" monitoring plugin command. It reads the systemd
journal records added since its previous run, matches them against the critical and warning
rules of a YAML rule file, and reports in the Nagios plugin format:

	checkjournal CRITICAL - 2 critical, 1 warning line(s) found

	*** critical hits ***

	Oct 19 08:00:01 host unit[1]: error one
	...

The exit status is 0 (OK), 1 (WARNING), 2 (CRITICAL), or 3 (UNKNOWN).

The rule file lists regular expressions under the keys criticalpatterns, criticalexceptions,
warningpatterns, and warningexceptions. A record matches a severity if one of its patterns and
none of its exceptions match.

The main package defines the following command line flags:
  - -journalctl:  the journalctl executable (default journalctl)
  - -span:        the records read when there is no resume marker (default 10m1s)
  - -lines:       the matching lines shown per severity (default 25)
  - -bytes:       the size limit of the report details (default 8192)
  - -timeout:     the limit on the check's duration (default 1m0s)
  - -statefile:   the resume marker file
  - -user:        read the user journal
  - -metricsfile: the Prometheus textfile to write
  - -config:      a TOML settings file
  - -color:       highlight the status on a terminal
*/
package main
