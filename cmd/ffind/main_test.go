package main

import (
	"errors"
	"testing"

	"github.com/kk-code-lab/ffind/internal/matcher"
)

func noEnv(string) string { return "" }

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"abbrev"}, noEnv)
	if err != nil {
		t.Fatalf("parseArgs error: %v", err)
	}
	if cfg.abbrev != "abbrev" || !cfg.haveAbbrev {
		t.Errorf("abbrev = %q (have=%v), want abbrev", cfg.abbrev, cfg.haveAbbrev)
	}
	if cfg.root != "." {
		t.Errorf("root = %q, want .", cfg.root)
	}
	want := matcher.DefaultOptions()
	if cfg.opts != want {
		t.Errorf("opts = %+v, want defaults %+v", cfg.opts, want)
	}
}

func TestParseArgsMissingAbbreviation(t *testing.T) {
	if _, err := parseArgs(nil, noEnv); !errors.Is(err, matcher.ErrMissingAbbreviation) {
		t.Errorf("parseArgs() error = %v, want ErrMissingAbbreviation", err)
	}
	if _, err := parseArgs([]string{"--limit", "5"}, noEnv); !errors.Is(err, matcher.ErrMissingAbbreviation) {
		t.Errorf("parseArgs(--limit 5) error = %v, want ErrMissingAbbreviation", err)
	}
	// Picker mode works without an abbreviation.
	if _, err := parseArgs([]string{"--pick"}, noEnv); err != nil {
		t.Errorf("parseArgs(--pick) error = %v, want nil", err)
	}
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := parseArgs([]string{
		"--root", "/tmp/x",
		"--limit=25",
		"--threads", "4",
		"--depth=3",
		"--case-sensitive",
		"--ignore-spaces",
		"--no-sort",
		"--recurse",
		"--show-dot-files",
		"--skip-hidden",
		"--stdin",
		"mgo",
	}, noEnv)
	if err != nil {
		t.Fatalf("parseArgs error: %v", err)
	}
	if cfg.root != "/tmp/x" || !cfg.stdin || !cfg.skipHidden || cfg.depth != 3 {
		t.Errorf("cfg = %+v, scan flags wrong", cfg)
	}
	if cfg.abbrev != "mgo" {
		t.Errorf("abbrev = %q, want mgo", cfg.abbrev)
	}
	o := cfg.opts
	if o.Limit != 25 || o.Threads != 4 || !o.CaseSensitive || !o.IgnoreSpaces ||
		o.Sort || !o.Recurse || !o.AlwaysShowDotFiles {
		t.Errorf("opts = %+v", o)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := [][]string{
		{"--limit"},           // missing value
		{"--limit", "x", "a"}, // non-numeric
		{"--threads=-2", "a"}, // negative
		{"--bogus", "a"},      // unknown option
		{"a", "b"},            // extra positional
	}
	for _, args := range tests {
		if _, err := parseArgs(args, noEnv); err == nil {
			t.Errorf("parseArgs(%v) succeeded, want error", args)
		}
	}
}

func TestParseArgsThreadsFromEnv(t *testing.T) {
	env := func(key string) string {
		if key == "FFIND_THREADS" {
			return "6"
		}
		return ""
	}
	cfg, err := parseArgs([]string{"a"}, env)
	if err != nil {
		t.Fatalf("parseArgs error: %v", err)
	}
	if cfg.opts.Threads != 6 {
		t.Errorf("Threads = %d, want 6 from env", cfg.opts.Threads)
	}

	cfg, err = parseArgs([]string{"--threads", "2", "a"}, env)
	if err != nil {
		t.Fatalf("parseArgs error: %v", err)
	}
	if cfg.opts.Threads != 2 {
		t.Errorf("Threads = %d, explicit flag should override env", cfg.opts.Threads)
	}
}
