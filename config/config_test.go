// Copyright © 2021-2025 The Gomon Project.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkjournal.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	s := Defaults()
	require.NoError(t, Load(filepath.Join(t.TempDir(), "absent.toml"), &s, nil))
	assert.Equal(t, Defaults(), s)

	require.NoError(t, Load("", &s, nil))
	assert.Equal(t, Defaults(), s)
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeSettings(t, `
journalctl = " /usr/local/bin/journalctl "
span = "15m"
lines = -1
bytes = 4096
timeout = "30s"
statefile = "~/.cache/checkjournal/cursor"
user = true
metricsfile = "/var/lib/node_exporter/checkjournal.prom"
rules = "https://config.example.com/rules.yaml"
color = true
`)

	s := Defaults()
	require.NoError(t, Load(path, &s, nil))
	assert.Equal(t, Settings{
		Journalctl:  "/usr/local/bin/journalctl",
		Span:        15 * time.Minute,
		Lines:       -1,
		Bytes:       4096,
		Timeout:     30 * time.Second,
		Statefile:   filepath.Join(home, ".cache/checkjournal/cursor"),
		User:        true,
		Metricsfile: "/var/lib/node_exporter/checkjournal.prom",
		Rules:       "https://config.example.com/rules.yaml",
		Color:       true,
	}, s)
}

func TestLoadKeepsFlags(t *testing.T) {
	path := writeSettings(t, "lines = 5\nspan = \"1h\"\nbytes = 100\n")

	s := Defaults()
	s.Lines = 40
	require.NoError(t, Load(path, &s, func(key string) bool { return key == "lines" }))
	assert.Equal(t, 40, s.Lines)
	assert.Equal(t, time.Hour, s.Span)
	assert.Equal(t, 100, s.Bytes)
	assert.Equal(t, Defaults().Timeout, s.Timeout)
}

func TestLoadRelativeRules(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeSettings(t, `rules = "rules.yaml"`)

	s := Defaults()
	require.NoError(t, Load(path, &s, nil))
	assert.Equal(t, filepath.Join(dir, "rules.yaml"), s.Rules)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", `spam = "601s"`, "parse settings"},
		{"bad duration", `span = "ten minutes"`, "settings span"},
		{"negative timeout", `timeout = "-5s"`, "must be positive"},
		{"wrong type", `lines = "many"`, "parse settings"},
		{"malformed", `lines = `, "parse settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			err := Load(writeSettings(t, tt.content), &s, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
