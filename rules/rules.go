// Copyright © 2021-2025 The Gomon Project.

package rules

import (
	"fmt"
	"regexp"
)

type (
	// Severity ranks a match, Critical above Warning.
	Severity int

	// Role distinguishes the expressions that nominate a line from those that suppress it.
	Role string

	// File holds the uncompiled expressions of a rule file.
	File struct {
		CriticalPatterns   []string `yaml:"criticalpatterns"`
		CriticalExceptions []string `yaml:"criticalexceptions"`
		WarningPatterns    []string `yaml:"warningpatterns"`
		WarningExceptions  []string `yaml:"warningexceptions"`
	}

	// group is the compiled patterns and exceptions of one severity.
	group struct {
		patterns   []*regexp.Regexp
		exceptions []*regexp.Regexp
	}

	// RuleSet holds the compiled groups for both severities. It is immutable once compiled.
	RuleSet struct {
		groups [Critical + 1]group
	}

	// Outcome reports the classification of a line. A zero Severity means no match.
	Outcome struct {
		Severity Severity
		// Pattern is the first pattern that matched.
		Pattern string
		// Exception is the first exception that suppressed the match, if any.
		Exception string
	}

	// CompileError identifies an expression that failed to compile.
	CompileError struct {
		Severity Severity
		Role     Role
		Pattern  string
		Err      error
	}
)

const (
	None Severity = iota
	Warning
	Critical
)

const (
	RolePattern   Role = "pattern"
	RoleException Role = "exception"
)

// Severities lists the severities in the order a line is classified.
var Severities = []Severity{Critical, Warning}

// String returns the severity name.
func (sev Severity) String() string {
	switch sev {
	case Critical:
		return "critical"
	case Warning:
		return "warning"
	}
	return "none"
}

// Error reports the failing expression.
func (err *CompileError) Error() string {
	return fmt.Sprintf("invalid %s %s %q: %v", err.Severity, err.Role, err.Pattern, err.Err)
}

// Unwrap returns the regular expression parser error.
func (err *CompileError) Unwrap() error {
	return err.Err
}

// Compile compiles every expression of the rule file, failing on the first invalid one.
func Compile(rf File) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, g := range []struct {
		sev        Severity
		patterns   []string
		exceptions []string
	}{
		{Critical, rf.CriticalPatterns, rf.CriticalExceptions},
		{Warning, rf.WarningPatterns, rf.WarningExceptions},
	} {
		var err error
		if rs.groups[g.sev].patterns, err = compile(g.sev, RolePattern, g.patterns); err != nil {
			return nil, err
		}
		if rs.groups[g.sev].exceptions, err = compile(g.sev, RoleException, g.exceptions); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func compile(sev Severity, role Role, exprs []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &CompileError{
				Severity: sev,
				Role:     role,
				Pattern:  expr,
				Err:      err,
			}
		}
		res = append(res, re)
	}
	return res, nil
}

// Matched reports whether the outcome attributes the line to a severity.
func (o Outcome) Matched() bool {
	return o.Severity != None
}

// Evaluate checks a line against a single severity. A line fires when a pattern matches and
// no exception of the same severity matches. A suppressed line reports the exception.
func (rs *RuleSet) Evaluate(sev Severity, line string) Outcome {
	if sev != Critical && sev != Warning {
		return Outcome{}
	}
	g := &rs.groups[sev]

	matched := false
	var pattern string
	for _, re := range g.patterns {
		if re.MatchString(line) {
			matched, pattern = true, re.String()
			break
		}
	}
	if !matched {
		return Outcome{}
	}

	for _, re := range g.exceptions {
		if re.MatchString(line) {
			return Outcome{Pattern: pattern, Exception: re.String()}
		}
	}

	return Outcome{Severity: sev, Pattern: pattern}
}

// Classify attributes a line to the highest severity that fires: critical first, then warning.
func (rs *RuleSet) Classify(line string) Outcome {
	var suppressed Outcome
	for _, sev := range Severities {
		o := rs.Evaluate(sev, line)
		if o.Matched() {
			return o
		}
		if suppressed.Exception == "" {
			suppressed = o
		}
	}
	return suppressed
}

// Len returns the number of patterns and exceptions compiled for a severity.
func (rs *RuleSet) Len(sev Severity) (patterns, exceptions int) {
	if sev != Critical && sev != Warning {
		return 0, 0
	}
	return len(rs.groups[sev].patterns), len(rs.groups[sev].exceptions)
}
