package matcher

import "testing"

func TestCompareAlpha(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"", "", 0},
		{"", "a", -1},
		{"abc", "ab", 1},  // shorter string wins on equal prefix
		{"ab", "abc", -1}, // shorter string wins on equal prefix
		{"abd", "abc", 1},
		{"foo/bar", "foo/baz", -1},
		{"foo", "foo/bar", -1},
		{"Z", "a", -1}, // raw byte comparison, no folding
	}
	for _, tt := range tests {
		if got := sign(compareAlpha(tt.a, tt.b)); got != tt.want {
			t.Errorf("compareAlpha(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got, want := sign(compareAlpha(tt.b, tt.a)), -tt.want; got != want {
			t.Errorf("compareAlpha(%q, %q) = %d, want %d", tt.b, tt.a, got, want)
		}
	}
}

func TestCompareScore(t *testing.T) {
	tests := []struct {
		name string
		a, b scoredPath
		want int
	}{
		{"higher score first", scoredPath{"x", 2.0}, scoredPath{"a", 1.0}, -1},
		{"lower score later", scoredPath{"a", 0.5}, scoredPath{"x", 1.5}, 1},
		{"equal scores fall back to alpha", scoredPath{"b", 1.0}, scoredPath{"a", 1.0}, 1},
		{"equal scores shorter first", scoredPath{"ab", 1.0}, scoredPath{"abc", 1.0}, -1},
		{"identical", scoredPath{"a", 1.0}, scoredPath{"a", 1.0}, 0},
	}
	for _, tt := range tests {
		if got := sign(compareScore(tt.a, tt.b)); got != tt.want {
			t.Errorf("%s: compareScore = %d, want %d", tt.name, got, tt.want)
		}
		if got, want := sign(compareScore(tt.b, tt.a)), -tt.want; got != want {
			t.Errorf("%s reversed: compareScore = %d, want %d", tt.name, got, want)
		}
	}
}

// The comparator must satisfy a strict weak ordering for slices.SortFunc;
// check transitivity over a small fixed set.
func TestCompareScoreTransitive(t *testing.T) {
	entries := []scoredPath{
		{"a", 3.0}, {"b", 3.0}, {"ab", 3.0},
		{"c", 1.0}, {"", 1.0}, {"zz", 0.0},
	}
	for _, x := range entries {
		if compareScore(x, x) != 0 {
			t.Errorf("compareScore(%v, %v) != 0", x, x)
		}
		for _, y := range entries {
			for _, z := range entries {
				if compareScore(x, y) < 0 && compareScore(y, z) < 0 && compareScore(x, z) >= 0 {
					t.Errorf("transitivity violated for %v < %v < %v", x, y, z)
				}
			}
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
