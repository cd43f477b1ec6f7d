// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

var (
	// Flags defines and initializes the command line flags
	Flags = flags{
		FlagSet:              flag.FlagSet{},
		version:              false,
		commandDescription:   "",
		argumentDescriptions: [][2]string{},
		argsMax:              0,
	}

	// flagSyntax is a map of flags' names to their command line syntax
	flagSyntax = map[string]string{}

	// logBuf captures error output from Go flag parser
	logBuf = bytes.Buffer{}
)

type (
	flags struct {
		flag.FlagSet
		version              bool
		commandDescription   string
		argumentDescriptions [][2]string
		argsMax              int
	}
)

// Var maps a flag field to its name and description, and adds a brief description
func (f *flags) Var(field interface{}, name, syntax, detail string) {
	flagSyntax[name] = syntax
	switch field := field.(type) {
	case *int:
		f.IntVar(field, name, *field, detail)
	case *uint:
		f.UintVar(field, name, *field, detail)
	case *int64:
		f.Int64Var(field, name, *field, detail)
	case *float64:
		f.Float64Var(field, name, *field, detail)
	case *string:
		f.StringVar(field, name, *field, detail)
	case *bool:
		f.BoolVar(field, name, *field, detail)
	case *time.Duration:
		f.DurationVar(field, name, *field, detail)
	default:
		f.FlagSet.Var(field.(flag.Value), name, detail)
	}
}

// Describe sets the command description shown by -help.
func (f *flags) Describe(description string) {
	f.commandDescription = description
}

// Argument declares a positional command line argument.
func (f *flags) Argument(name, detail string) {
	f.argumentDescriptions = append(f.argumentDescriptions, [2]string{name, detail})
	f.argsMax++
}

// IsSet reports whether a flag was specified on the command line.
func (f *flags) IsSet(name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// init initializes the core command line flags.
func init() {
	log.SetFlags(0)

	Flags.Var(&Flags.version, "version", "[-version]", "Print version information and exit")

	Flags.SetOutput(&logBuf) // capture FlagSet.Parse messages
	Flags.Usage = usage
}

// parse inspects the command line.
func parse(args []string) error {
	if err := Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.New(strings.TrimSpace(logBuf.String()))
	}

	if Flags.NArg() > Flags.argsMax { // too many arguments?
		args := strings.Join(Flags.Args()[Flags.argsMax:], " ")
		return errors.New("invalid arguments: " + args)
	}

	return nil
}

// usage formats the flags Usage message for the command.
func usage() {
	if logBuf.Len() > 0 { // called by go's flag package parser with error text
		return // parse reports it
	}

	logBuf.WriteString("NAME:\n  " + commandName)
	logBuf.WriteString("\n\nDESCRIPTION:\n  " + Flags.commandDescription)

	var names []string
	for name := range flagSyntax {
		names = append(names, name)
	}
	sort.Strings(names)
	var flags []string
	for _, name := range names {
		flags = append(flags, flagSyntax[name])
	}
	logBuf.WriteString("\n\nUSAGE:\n  " + commandName + " [-help] " + strings.Join(flags, " "))

	if len(Flags.argumentDescriptions) > 0 {
		for _, args := range Flags.argumentDescriptions {
			logBuf.WriteString(" <" + args[0] + ">")
		}
	}
	logBuf.WriteString(`

VERSION:
  ` + vmmp + `

OPTIONS:
  -help
	Print the help and exit
`)
	Flags.PrintDefaults()

	if len(Flags.argumentDescriptions) > 0 {
		logBuf.WriteString("\nARGUMENTS:\n")
		for _, args := range Flags.argumentDescriptions {
			logBuf.WriteString("  " + args[0] + "\n\t" + args[1] + "\n")
		}
	}
	logBuf.WriteString("\nCopyright © 2021-2025 The Gomon Project.\n")
	fmt.Fprint(os.Stderr, logBuf.String())
	logBuf.Reset()
}
