// Copyright © 2021-2025 The Gomon Project.

// Package config loads the optional TOML settings file of checkjournal.
//
// Every key of the file corresponds to the command line flag of the same name. A setting from
// the file replaces the built in default, and a flag given on the command line replaces the
// file's setting. A settings file that does not exist is not an error.
//
// Example:
//
//	journalctl = "/usr/bin/journalctl"
//	span = "15m"
//	lines = 50
//	bytes = 16384
//	timeout = "30s"
//	statefile = "~/.cache/checkjournal/cursor"
//	user = false
//	metricsfile = "/var/lib/node_exporter/textfile/checkjournal.prom"
//	rules = "https://config.example.com/checkjournal/rules.yaml"
//	color = false
//
// Paths beginning with ~ are expanded to the home directory.
package config
