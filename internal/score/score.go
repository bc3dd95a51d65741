// Package score provides the built-in scoring adapter for the matcher:
// an ordered-subsequence scorer with boundary-aware per-character
// weighting and Command-T style dot-file visibility rules.
package score

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kk-code-lab/ffind/internal/matcher"
)

// weights tunes the per-character contribution of a matched rune.
type weights struct {
	pathStart   float64 // rune 0 of the path
	segment     float64 // rune directly after a path separator
	boundary    float64 // rune after . _ - space, or a lower->upper step
	consecutive float64 // rune directly after the previous matched rune
	decayBase   float64 // otherwise, divided by the gap to the previous match
}

// Scorer is a pure, concurrency-safe matcher.Scorer. A path scores
// positive iff every abbreviation rune appears in it in order and the
// dot-file rules allow the path to be shown.
type Scorer struct {
	w weights
}

// New creates a Scorer with the default weighting.
func New() *Scorer {
	return &Scorer{
		w: weights{
			pathStart:   1.0,
			segment:     0.9,
			boundary:    0.8,
			consecutive: 0.75,
			decayBase:   0.75,
		},
	}
}

// Score implements matcher.Scorer. The abbreviation in q is already
// normalized by the engine; only path runes are folded here when the
// query is case-insensitive.
func (s *Scorer) Score(path string, q matcher.Query) float64 {
	if path == "" {
		return 0.0
	}
	if q.NeverShowDotFiles && !q.AlwaysShowDotFiles && hasDotFileSegment(path) {
		return 0.0
	}
	if q.Abbrev == "" {
		// Everything matches an empty abbreviation, but dot-files stay
		// hidden unless explicitly allowed.
		if !q.AlwaysShowDotFiles && hasDotFileSegment(path) {
			return 0.0
		}
		return 1.0
	}

	pathRunes, pathBuf := acquireRunes(path)
	defer releaseRunes(pathBuf)
	abbrevRunes, abbrevBuf := acquireRunes(q.Abbrev)
	defer releaseRunes(abbrevBuf)

	if len(abbrevRunes) > len(pathRunes) {
		return 0.0
	}

	var m *memoTable
	if q.Recurse {
		m = acquireMemo(len(pathRunes)+1, len(abbrevRunes))
		defer releaseMemo(m)
	}

	total, ok := s.find(pathRunes, abbrevRunes, 0, 0, q, m)
	if !ok || total <= 0 {
		return 0.0
	}
	return total / float64(len(pathRunes))
}

// find returns the best weight sum for placing abbrev[ai:] within
// path[pi:]. The previous abbreviation rune, if any, was matched at
// pi-1. Greedy queries take the first full placement; Recurse queries
// memoize on (pi, ai) and keep the best over all placements.
func (s *Scorer) find(path, abbrev []rune, pi, ai int, q matcher.Query, m *memoTable) (float64, bool) {
	if ai == len(abbrev) {
		return 0, true
	}
	if len(abbrev)-ai > len(path)-pi {
		return 0, false
	}
	if m != nil {
		if val, state := m.get(pi, ai); state != memoUnset {
			return val, state == memoMatched
		}
	}

	want := abbrev[ai]
	best := 0.0
	found := false

	for i := pi; i < len(path); i++ {
		c := path[i]
		// A segment-opening dot must be matched by a literal dot in the
		// abbreviation; it can never be passed over (the dot-file stays
		// hidden) unless AlwaysShowDotFiles is set.
		gatingDot := c == '.' && (i == 0 || path[i-1] == '/') && !q.AlwaysShowDotFiles

		if foldEq(c, want, q.CaseSensitive) {
			w := s.charWeight(path, i, pi, ai)
			rest, ok := s.find(path, abbrev, i+1, ai+1, q, m)
			if ok {
				total := w + rest
				if !q.Recurse {
					return total, true
				}
				if !found || total > best {
					best = total
					found = true
				}
			} else if !q.Recurse {
				// Later starting points search a subset of this
				// placement space; they cannot succeed either.
				break
			}
		}

		if gatingDot {
			break
		}
	}

	if m != nil {
		state := memoNoMatch
		if found {
			state = memoMatched
		}
		m.put(pi, ai, best, state)
	}
	return best, found
}

func (s *Scorer) charWeight(path []rune, i, pi, ai int) float64 {
	switch {
	case i == 0:
		return s.w.pathStart
	case path[i-1] == '/':
		return s.w.segment
	case isBoundaryBefore(path, i):
		return s.w.boundary
	case ai > 0 && i == pi:
		return s.w.consecutive
	}
	gap := i - pi + 1
	return s.w.decayBase / float64(gap)
}

func isBoundaryBefore(path []rune, i int) bool {
	prev := path[i-1]
	switch prev {
	case '.', '_', '-', ' ':
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(path[i])
}

func foldEq(c, want rune, caseSensitive bool) bool {
	if caseSensitive {
		return c == want
	}
	return unicode.ToLower(c) == want
}

// hasDotFileSegment reports whether any path segment starts with a dot.
func hasDotFileSegment(path string) bool {
	if strings.HasPrefix(path, ".") {
		return true
	}
	return strings.Contains(path, "/.")
}

type runeBuffer struct {
	data []rune
}

var runeBufferPool = sync.Pool{
	New: func() any {
		return &runeBuffer{}
	},
}

func acquireRunes(s string) ([]rune, *runeBuffer) {
	buf := runeBufferPool.Get().(*runeBuffer)
	runes := buf.data[:0]
	for _, r := range s {
		runes = append(runes, r)
	}
	buf.data = runes
	return runes, buf
}

func releaseRunes(buf *runeBuffer) {
	if buf == nil {
		return
	}
	buf.data = buf.data[:0]
	runeBufferPool.Put(buf)
}

const (
	memoUnset = uint8(iota)
	memoMatched
	memoNoMatch
)

type memoTable struct {
	vals   []float64
	states []uint8
	cols   int
}

var memoPool = sync.Pool{
	New: func() any {
		return &memoTable{}
	},
}

func acquireMemo(rows, cols int) *memoTable {
	m := memoPool.Get().(*memoTable)
	needed := rows * cols
	if cap(m.vals) < needed {
		m.vals = make([]float64, needed)
		m.states = make([]uint8, needed)
	}
	m.vals = m.vals[:needed]
	m.states = m.states[:needed]
	for i := range m.states {
		m.states[i] = memoUnset
	}
	m.cols = cols
	return m
}

func releaseMemo(m *memoTable) {
	memoPool.Put(m)
}

func (m *memoTable) get(pi, ai int) (float64, uint8) {
	cell := pi*m.cols + ai
	return m.vals[cell], m.states[cell]
}

func (m *memoTable) put(pi, ai int, val float64, state uint8) {
	cell := pi*m.cols + ai
	m.vals[cell] = val
	m.states[cell] = state
}
