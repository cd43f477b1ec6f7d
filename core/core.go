// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var (
	// executable identifies the full command path.
	executable, _ = os.Executable()

	// buildDate sets the build date for the command.
	buildDate = func() string {
		info, err := os.Stat(executable)
		if err != nil {
			return "unknown"
		}
		return info.ModTime().UTC().Format("2006-01-02 15:04:05 UTC")
	}()

	// commandName is the base name of the executable.
	commandName = filepath.Base(executable)
)

const (
	// exitUsage reports an invalid command line, UNKNOWN by monitoring plugin convention.
	exitUsage = 3
)

// version returns the command's version information.
func version() string {
	return fmt.Sprintf(
		`Command    - %s
Module     - %s
Version    - %s
Build Date - %s
Compiler   - %s %s_%s
Copyright © 2021-2025 The Gomon Project.
`,
		executable, module, vmmp, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// CommandName returns the base name of the running executable.
func CommandName() string {
	return commandName
}

// Main drives the show. It parses the command line, runs fn with a context that is cancelled
// on SIGINT or SIGTERM, and exits with fn's return code.
func Main(fn func(context.Context) int) {
	if err := parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stdout, "%s UNKNOWN - %v\n", commandName, err)
		os.Exit(exitUsage)
	}

	if Flags.version {
		fmt.Fprint(os.Stderr, version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-signalChannel():
			LogWarn(fmt.Errorf("signal %[1]d (%[1]s) pid %d", sig, os.Getpid()))
			cancel()
		case <-ctx.Done():
		}
	}()

	code := fn(ctx)
	cancel()
	os.Exit(code)
}
