// Copyright © 2021-2025 The Gomon Project.

package rules

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zosmac/checkjournal/core"
	"golang.org/x/net/context/ctxhttp"
	"gopkg.in/yaml.v3"
)

var (
	// client retrieves remote rule files.
	client = &http.Client{
		Timeout: 300 * time.Second,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         (&net.Dialer{Timeout: 30 * time.Second}).DialContext,
			TLSHandshakeTimeout: 30 * time.Second,
		},
	}

	// maxRuleFile bounds the size of a rule file.
	maxRuleFile int64 = 4 << 20
)

// Load reads, parses, and compiles the rule file at source, a local path or an http(s) URL.
func Load(ctx context.Context, source string) (*RuleSet, error) {
	rf, err := Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Compile(rf)
}

// Fetch reads and parses the rule file at source without compiling it.
func Fetch(ctx context.Context, source string) (File, error) {
	if strings.TrimSpace(source) == "" {
		return File{}, core.Error("rules", errors.New("no rule file specified"))
	}

	var rdr io.ReadCloser
	if strings.Contains(source, "://") {
		resp, err := ctxhttp.Get(ctx, client, source)
		if err != nil {
			return File{}, core.Error("retrieve remote rules", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return File{}, core.Error(
				"retrieve remote rules",
				fmt.Errorf("%s: %s", source, resp.Status),
			)
		}
		rdr = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return File{}, core.Error("open rules file", err)
		}
		rdr = f
	}
	defer rdr.Close()

	rf, err := Parse(io.LimitReader(rdr, maxRuleFile))
	if err != nil {
		return File{}, core.Error("parse rules "+source, err)
	}
	return rf, nil
}

// Parse decodes a YAML rule file. Unknown keys are rejected so that a misspelled key does not
// silently disable a rule group.
func Parse(r io.Reader) (File, error) {
	var rf File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, errors.New("rule file is empty")
		}
		return File{}, err
	}
	return rf, nil
}
