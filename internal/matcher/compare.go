package matcher

import "slices"

// rank sorts the fully scored buffer in place. The abbreviations "" and
// "." carry no ranking signal (everything matches about equally), so
// those queries sort alphabetically; everything else sorts by score.
func rank(buf []scoredPath, abbrev string) {
	if abbrev == "" || abbrev == "." {
		slices.SortFunc(buf, func(a, b scoredPath) int {
			return compareAlpha(a.path, b.path)
		})
		return
	}
	slices.SortFunc(buf, compareScore)
}

// compareAlpha orders paths by raw byte comparison over the shared
// prefix; when the shorter string is a prefix of the longer, the shorter
// sorts first. This is a strict weak ordering.
func compareAlpha(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// compareScore orders by descending score, falling back to compareAlpha
// so equal-scoring entries keep a deterministic relative order under an
// unstable sort.
func compareScore(a, b scoredPath) int {
	if a.score > b.score {
		return -1
	}
	if a.score < b.score {
		return 1
	}
	return compareAlpha(a.path, b.path)
}
