// Copyright © 2021-2025 The Gomon Project.

package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/zosmac/checkjournal/core"
	"github.com/zosmac/checkjournal/journal"
)

type (
	// Settings of a check.
	Settings struct {
		Journalctl  string
		Span        time.Duration
		Lines       int
		Bytes       int
		Timeout     time.Duration
		Statefile   string
		User        bool
		Metricsfile string
		Rules       string
		Color       bool
	}

	// file mirrors the settings file. Absent keys decode as nil.
	file struct {
		Journalctl  *string `toml:"journalctl"`
		Span        *string `toml:"span"`
		Lines       *int    `toml:"lines"`
		Bytes       *int    `toml:"bytes"`
		Timeout     *string `toml:"timeout"`
		Statefile   *string `toml:"statefile"`
		User        *bool   `toml:"user"`
		Metricsfile *string `toml:"metricsfile"`
		Rules       *string `toml:"rules"`
		Color       *bool   `toml:"color"`
	}
)

// Defaults returns the built in settings.
func Defaults() Settings {
	return Settings{
		Journalctl: journal.DefaultExecutable,
		Span:       journal.DefaultSpan,
		Lines:      25,
		Bytes:      8192,
		Timeout:    60 * time.Second,
	}
}

// Load overlays the settings file at path onto s. Keys for which keep reports true are left
// as they are. An empty path or a missing file leaves s unchanged.
func Load(path string, s *Settings, keep func(key string) bool) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	path, err := core.ExpandPath(path)
	if err != nil {
		return core.Error("settings path", err)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogDebug(core.Error("settings file "+path+" not found", err))
		return nil
	}
	if err != nil {
		return core.Error("open settings", err)
	}
	defer f.Close()

	var raw file
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return core.Error("parse settings "+path, err)
	}

	if keep == nil {
		keep = func(string) bool { return false }
	}
	set := func(key string) bool {
		return !keep(key)
	}

	if raw.Journalctl != nil && set("journalctl") {
		s.Journalctl = strings.TrimSpace(*raw.Journalctl)
	}
	if raw.Span != nil && set("span") {
		if s.Span, err = duration("span", *raw.Span); err != nil {
			return err
		}
	}
	if raw.Lines != nil && set("lines") {
		s.Lines = *raw.Lines
	}
	if raw.Bytes != nil && set("bytes") {
		s.Bytes = *raw.Bytes
	}
	if raw.Timeout != nil && set("timeout") {
		if s.Timeout, err = duration("timeout", *raw.Timeout); err != nil {
			return err
		}
	}
	if raw.Statefile != nil && set("statefile") {
		if s.Statefile, err = expand(*raw.Statefile); err != nil {
			return err
		}
	}
	if raw.User != nil && set("user") {
		s.User = *raw.User
	}
	if raw.Metricsfile != nil && set("metricsfile") {
		if s.Metricsfile, err = expand(*raw.Metricsfile); err != nil {
			return err
		}
	}
	if raw.Rules != nil && set("rules") {
		s.Rules = strings.TrimSpace(*raw.Rules)
		if !strings.Contains(s.Rules, "://") {
			if s.Rules, err = expand(s.Rules); err != nil {
				return err
			}
		}
	}
	if raw.Color != nil && set("color") {
		s.Color = *raw.Color
	}

	return nil
}

func duration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, core.Error("settings "+key, err)
	}
	if d <= 0 {
		return 0, core.Error("settings "+key, errors.New("must be positive"))
	}
	return d, nil
}

// expand resolves a path setting. An empty setting clears it.
func expand(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	path, err := core.ExpandPath(path)
	if err != nil {
		return "", core.Error("settings path", err)
	}
	return path, nil
}
