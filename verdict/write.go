// Copyright © 2021-2025 The Gomon Project.

package verdict

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/zosmac/checkjournal/rules"
)

type (
	// Options control report rendering.
	Options struct {
		// Name prefixes the status line.
		Name string
		// MaxBytes caps the details following the status line. Zero or less disables the cap.
		MaxBytes int
		// Color highlights the status keyword with ANSI escapes.
		Color bool
	}
)

var (
	// colors maps each status to a terminal color.
	colors = map[Status]lipgloss.Color{
		OK:       lipgloss.Color("2"),
		Warning:  lipgloss.Color("3"),
		Critical: lipgloss.Color("1"),
		Unknown:  lipgloss.Color("5"),
	}
)

// Write renders the status line followed by the sampled matches, or by the reader's diagnostics
// if it failed.
func Write(w io.Writer, v Verdict, opts Options) error {
	keyword := v.Status.String()
	if opts.Color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		keyword = r.NewStyle().Bold(true).Foreground(colors[v.Status]).Render(keyword)
	}

	var b strings.Builder
	if opts.Name != "" {
		b.WriteString(opts.Name + " ")
	}
	fmt.Fprintf(&b, "%s - %s\n", keyword, v.Summary)

	d := details{max: opts.MaxBytes}
	if v.Result != nil {
		for _, sev := range rules.Severities {
			t := v.Result.Tally(sev)
			if t.Count == 0 {
				continue
			}
			trunc := ""
			if t.Truncated {
				trunc = " (truncated)"
			}
			d.add(fmt.Sprintf("\n*** %s hits%s ***\n\n", sev, trunc))
			for _, line := range t.Lines {
				d.add(line + "\n")
			}
		}
	}
	if stderr := v.stderr(); stderr != "" {
		d.add("\n*** stderr ***\n")
		for line := range strings.Lines(stderr) {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			d.add(line)
		}
	}
	b.WriteString(d.String())

	_, err := io.WriteString(w, b.String())
	return err
}

type (
	// details accumulates report text up to a byte limit, dropping everything after the first
	// piece that does not fit.
	details struct {
		strings.Builder
		max  int
		full bool
	}
)

func (d *details) add(s string) {
	if d.full {
		return
	}
	if d.max > 0 && d.Len()+len(s) > d.max {
		d.full = true
		return
	}
	d.WriteString(s)
}
