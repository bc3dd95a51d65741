package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/ffind/internal/matcher"
	"github.com/kk-code-lab/ffind/internal/scanner"
	"github.com/kk-code-lab/ffind/internal/score"
	"github.com/kk-code-lab/ffind/internal/textutil"
	"github.com/kk-code-lab/ffind/internal/ui/picker"
)

func printHelp() {
	fmt.Print(`ffind - Fuzzy path finder

USAGE:
    ffind [OPTIONS] ABBREV       Rank paths against ABBREV, print matches
    ffind [OPTIONS] --pick       Interactive picker (ABBREV optional)

OPTIONS:
    -h, --help            Show this help message and exit
    --root DIR            Directory to scan (default ".")
    --stdin               Read candidate paths from stdin instead of scanning
    --limit N             Maximum number of matches (0 = unlimited)
    --threads N           Worker count for scoring (default $FFIND_THREADS or 1)
    --depth N             Maximum scan depth (0 = unlimited)
    --case-sensitive      Do not lowercase the abbreviation before matching
    --ignore-spaces       Strip spaces from the abbreviation before matching
    --no-sort             Keep input order instead of ranking
    --recurse             Exhaustive match placement (better ranking, slower)
    --show-dot-files      Always let dot-files match
    --hide-dot-files      Never let dot-files match
    --skip-hidden         Skip hidden entries while scanning
    --pick                Interactive picker mode
`)
}

type cliConfig struct {
	abbrev     string
	haveAbbrev bool
	root       string
	stdin      bool
	pick       bool
	skipHidden bool
	depth      int
	opts       matcher.Options
}

func parseArgs(args []string, env func(string) string) (cliConfig, error) {
	cfg := cliConfig{root: ".", opts: matcher.DefaultOptions()}
	if v := env("FFIND_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.opts.Threads = n
		}
	}

	i := 0
	next := func(flag string) (string, error) {
		i++
		if i >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i], nil
	}
	intValue := func(flag, raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s requires a non-negative integer, got %q", flag, raw)
		}
		return n, nil
	}

	for ; i < len(args); i++ {
		arg := args[i]
		flag, inline, hasInline := strings.Cut(arg, "=")
		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			return next(flag)
		}

		switch flag {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "--root":
			v, err := value()
			if err != nil {
				return cfg, err
			}
			cfg.root = v
		case "--stdin":
			cfg.stdin = true
		case "--pick":
			cfg.pick = true
		case "--skip-hidden":
			cfg.skipHidden = true
		case "--limit":
			v, err := value()
			if err != nil {
				return cfg, err
			}
			if cfg.opts.Limit, err = intValue(flag, v); err != nil {
				return cfg, err
			}
		case "--threads":
			v, err := value()
			if err != nil {
				return cfg, err
			}
			if cfg.opts.Threads, err = intValue(flag, v); err != nil {
				return cfg, err
			}
		case "--depth":
			v, err := value()
			if err != nil {
				return cfg, err
			}
			if cfg.depth, err = intValue(flag, v); err != nil {
				return cfg, err
			}
		case "--case-sensitive":
			cfg.opts.CaseSensitive = true
		case "--ignore-spaces":
			cfg.opts.IgnoreSpaces = true
		case "--no-sort":
			cfg.opts.Sort = false
		case "--recurse":
			cfg.opts.Recurse = true
		case "--show-dot-files":
			cfg.opts.AlwaysShowDotFiles = true
		case "--hide-dot-files":
			cfg.opts.NeverShowDotFiles = true
		default:
			if strings.HasPrefix(flag, "-") {
				return cfg, fmt.Errorf("unknown option %q", flag)
			}
			if cfg.haveAbbrev {
				return cfg, fmt.Errorf("unexpected argument %q", arg)
			}
			cfg.abbrev = arg
			cfg.haveAbbrev = true
		}
	}

	if !cfg.pick && !cfg.haveAbbrev {
		return cfg, matcher.ErrMissingAbbreviation
	}
	return cfg, nil
}

func buildScanner(cfg cliConfig) (matcher.Scanner, error) {
	if cfg.stdin {
		var paths []string
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				paths = append(paths, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return scanner.Static(paths), nil
	}

	w := scanner.NewWalker(cfg.root, scanner.Options{
		IncludeHidden: !cfg.skipHidden,
		MaxDepth:      cfg.depth,
	})
	if _, err := w.Scan(); err != nil {
		return nil, err
	}
	return w, nil
}

func run(cfg cliConfig) error {
	src, err := buildScanner(cfg)
	if err != nil {
		return err
	}
	m, err := matcher.New(src, score.New())
	if err != nil {
		return err
	}

	if cfg.pick {
		// Set UTF-8 as fallback encoding so non-ASCII paths display
		// correctly on limited terminals.
		tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
		p, err := picker.New(m, cfg.opts)
		if err != nil {
			return err
		}
		choice, accepted, err := p.Run()
		if err != nil {
			return err
		}
		if accepted {
			fmt.Println(choice)
		}
		return nil
	}

	matches, err := m.SortedMatches(cfg.abbrev, cfg.opts)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, match := range matches {
		fmt.Fprintln(out, textutil.SanitizePath(match))
	}
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ffind: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ffind: %v\n", err)
		os.Exit(1)
	}
}
