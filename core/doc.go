// Copyright © 2021-2025 The Gomon Project.

/*
Package core implements functionality used by the "checkjournal" command. Functions support
  - a one-shot command line framework whose exit status is the check result
  - extensions to the Go flag package
  - help for command syntax and positional arguments
  - enhanced logging, with error annotation by operation and source location

The core package defines the following command line flag:
  - -version: to report the current version of checkjournal
*/
package core
