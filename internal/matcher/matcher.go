// Package matcher ranks candidate paths against a typed abbreviation.
//
// A query is a single complete pass: every path is scored (in parallel for
// large collections), the scored buffer is sorted with a deterministic
// comparator, and matches are filtered and truncated to the requested limit.
// Results never depend on thread count or scheduling.
package matcher

import (
	"errors"
	"strings"
)

var (
	// ErrMissingAbbreviation is returned when a caller that requires an
	// abbreviation (e.g. the CLI in one-shot mode) has none to supply.
	// The empty string is a valid abbreviation and does not trigger this.
	ErrMissingAbbreviation = errors.New("matcher: missing abbreviation")

	// ErrInvalidOptions is returned for out-of-range option values.
	ErrInvalidOptions = errors.New("matcher: invalid options")

	// ErrNilScanner and ErrNilScorer reject incomplete construction.
	ErrNilScanner = errors.New("matcher: nil scanner")
	ErrNilScorer  = errors.New("matcher: nil scorer")
)

// Options configures a single query. The zero value is not the default;
// use DefaultOptions as the base and override fields from there.
type Options struct {
	// CaseSensitive skips lowercasing the abbreviation before matching.
	CaseSensitive bool
	// AlwaysShowDotFiles lets dot-files match without a literal "." in
	// the abbreviation. Wins over NeverShowDotFiles when both are set.
	AlwaysShowDotFiles bool
	// NeverShowDotFiles excludes dot-files from results entirely.
	NeverShowDotFiles bool
	// IgnoreSpaces strips spaces from the abbreviation before matching.
	IgnoreSpaces bool
	// Recurse asks the scorer for the exhaustive (best-placement) search
	// instead of the greedy leftmost walk.
	Recurse bool
	// Threads is the requested worker count. Values below 1 mean 1.
	// Collections under the threading threshold always use one worker.
	Threads int
	// Sort enables ranking. When false the scoring-phase (input) order
	// is kept.
	Sort bool
	// Limit bounds the number of returned matches. 0 means unbounded.
	Limit int
}

// DefaultOptions returns the documented defaults: single-threaded,
// case-insensitive, sorted, unbounded.
func DefaultOptions() Options {
	return Options{Threads: 1, Sort: true}
}

// Query is the normalized, read-only view of a query handed to the scorer.
// It is fixed before any worker starts and shared by all of them.
type Query struct {
	// Abbrev is the abbreviation after normalization (case folding and
	// space stripping per Options).
	Abbrev             string
	CaseSensitive      bool
	AlwaysShowDotFiles bool
	NeverShowDotFiles  bool
	Recurse            bool
}

// Scorer computes a goodness-of-match score for one path. Scores at or
// below zero mean "no match". Implementations must be pure and safe for
// concurrent calls with distinct paths.
type Scorer interface {
	Score(path string, q Query) float64
}

// Scanner supplies the candidate path collection, fully materialized.
type Scanner interface {
	Paths() []string
}

// scoredPath pairs a candidate with its score for one query. The result
// buffer is a []scoredPath sized to the input, written once per index
// during scoring, then reordered in place by the ranker.
type scoredPath struct {
	path  string
	score float64
}

// Matcher binds a path source to a scorer.
type Matcher struct {
	scanner Scanner
	scorer  Scorer
}

// New creates a Matcher. Both collaborators are required.
func New(scanner Scanner, scorer Scorer) (*Matcher, error) {
	if scanner == nil {
		return nil, ErrNilScanner
	}
	if scorer == nil {
		return nil, ErrNilScorer
	}
	return &Matcher{scanner: scanner, scorer: scorer}, nil
}

// SortedMatches runs one query over the scanner's current path set.
func (m *Matcher) SortedMatches(abbrev string, opts Options) ([]string, error) {
	return m.RankPaths(m.scanner.Paths(), abbrev, opts)
}

// RankPaths runs one query over an explicit path collection. The paths
// slice is only read; the returned slice is freshly allocated.
func (m *Matcher) RankPaths(paths []string, abbrev string, opts Options) ([]string, error) {
	if opts.Threads < 0 || opts.Limit < 0 {
		return nil, ErrInvalidOptions
	}

	q := Query{
		Abbrev:             normalizeAbbrev(abbrev, opts),
		CaseSensitive:      opts.CaseSensitive,
		AlwaysShowDotFiles: opts.AlwaysShowDotFiles,
		NeverShowDotFiles:  opts.NeverShowDotFiles,
		Recurse:            opts.Recurse,
	}

	buf := make([]scoredPath, len(paths))
	spans := partition(len(paths), opts.Threads)

	if err := m.runScoring(paths, buf, q, spans); err != nil {
		return nil, err
	}

	if opts.Sort {
		rank(buf, q.Abbrev)
	}

	results := selectMatches(buf, opts.Limit)
	if matchDebugEnabled() {
		matchLogf("abbrev=%q normalized=%q paths=%d workers=%d results=%d",
			abbrev, q.Abbrev, len(paths), len(spans), len(results))
	}
	return results, nil
}

// normalizeAbbrev produces the immutable abbreviation all workers read:
// lowercased unless case-sensitive, then space-stripped if requested.
func normalizeAbbrev(abbrev string, opts Options) string {
	if !opts.CaseSensitive {
		abbrev = strings.ToLower(abbrev)
	}
	if opts.IgnoreSpaces {
		abbrev = strings.ReplaceAll(abbrev, " ", "")
	}
	return abbrev
}

// selectMatches walks the (possibly sorted) buffer in order, keeping
// positive-score entries until the limit is reached. Non-matches are
// skipped and never count against the limit.
func selectMatches(buf []scoredPath, limit int) []string {
	if limit == 0 || limit > len(buf) {
		limit = len(buf)
	}
	results := make([]string, 0, limit)
	for i := 0; i < len(buf) && len(results) < limit; i++ {
		if buf[i].score > 0.0 {
			results = append(results, buf[i].path)
		}
	}
	return results
}
