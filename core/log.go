// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
)

var (
	logLevel = func() int {
		switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
		case "TRACE":
			return levelTrace
		case "DEBUG":
			return levelDebug
		case "WARN":
			return levelWarn
		case "ERROR":
			return levelError
		}
		return levelInfo
	}()

	// Invocation distinguishes the log lines of overlapping runs sharing a syslog.
	Invocation = uuid.NewString()[:8]
)

const (
	levelTrace = iota - 2
	levelDebug
	levelInfo // default
	levelWarn
	levelError
)

type (
	// Err custom logging error type
	Err struct {
		s     string
		where string
		err   error
	}
)

// Error method to comply with error interface
func (err *Err) Error() string {
	return err.s
}

// Unwrap method to comply with error interface
func (err *Err) Unwrap() error {
	return err.err
}

// Where reports the source location at which the error was first annotated.
func (err *Err) Where() string {
	return err.where
}

// Error annotates an error with the name of the failing operation and the source location
// of the caller. An error that is already an *Err percolates unchanged. A nil err returns nil.
func Error(name string, err error) error {
	if e := newErr(2, name, err); e != nil {
		return e
	}
	return nil
}

// logWrite writes a log message to the log destination.
func logWrite(level string, err error) {
	if e := newErr(3, "", err); e != nil {
		log.Printf("%s %-5s [%s] [%s] %s", time.Now().Format(TimeFormat), level, Invocation, e.where, e.s)
	}
}

// newErr formats an error with where, what, and why of an error.
func newErr(depth int, name string, err error) *Err {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Err); ok {
		return e // percolate original Err
	}
	_, n, l, _ := runtime.Caller(depth)
	where := fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(filepath.Dir(n)), filepath.Base(n)), l)
	var msg string
	if name != "" {
		msg = name + ": "
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		msg += fmt.Sprintf("errno %d: ", errno)
	}
	return &Err{
		s:     msg + err.Error(),
		where: where,
		err:   err,
	}
}

// LogTrace log trace message.
func LogTrace(err error) {
	if logLevel <= levelTrace {
		logWrite("TRACE", err)
	}
}

// LogDebug log debug message.
func LogDebug(err error) {
	if logLevel <= levelDebug {
		logWrite("DEBUG", err)
	}
}

// LogInfo log info message (default logging level).
func LogInfo(err error) {
	if logLevel <= levelInfo {
		logWrite("INFO", err)
	}
}

// LogWarn log warning message.
func LogWarn(err error) {
	if logLevel <= levelWarn {
		logWrite("WARN", err)
	}
}

// LogError log error message.
func LogError(err error) {
	if logLevel <= levelError {
		logWrite("ERROR", err)
	}
}
