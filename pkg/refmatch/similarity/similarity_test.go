package similarity

import (
	"math"
	"testing"
)

func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"salmon", "salmon", 100},
		{"abcd", "abcx", 75},     // one edit over four runes
		{"salmn", "salmon", 83.3}, // one edit over six runes
		{"", "salmon", 0},
		{"salmon", "", 0},
		{"", "", 100},
	}
	for _, tc := range cases {
		if got := Ratio(tc.a, tc.b); !approx(got, tc.want, 0.1) {
			t.Errorf("Ratio(%q, %q) = %.2f, want %.2f", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRatioCountsRunes(t *testing.T) {
	// One edit over four Hangul syllables, same as the ASCII case.
	if got := Ratio("살모넬라", "살모넬타"); !approx(got, 75, 0.1) {
		t.Errorf("Ratio over Hangul = %.2f, want 75", got)
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("frozen shrimp", "shrimp, frozen"); !approx(got, 100, 0.1) {
		t.Errorf("reordered tokens should score 100, got %.2f", got)
	}
	if got := TokenSortRatio("frozen shrimp", "frozen shrmp"); got >= 100 || got < 80 {
		t.Errorf("near-miss token sort = %.2f, want within [80,100)", got)
	}
}

func TestTokenSetRatio(t *testing.T) {
	// One shared token out of three on the left: 1/sqrt(3) cosine.
	if got := TokenSetRatio("frozen raw shrimp", "shrimp"); !approx(got, 57.7, 0.5) {
		t.Errorf("TokenSetRatio = %.2f, want ~57.7", got)
	}
	if got := TokenSetRatio("abcd", "efgh"); got != 0 {
		t.Errorf("disjoint tokens should score 0, got %.2f", got)
	}
	if got := TokenSetRatio("", "shrimp"); got != 0 {
		t.Errorf("empty side should score 0, got %.2f", got)
	}
}

func TestWeightedRatio(t *testing.T) {
	// Token sort wins over the raw ratio when only order differs.
	if got := WeightedRatio("frozen shrimp", "shrimp frozen"); !approx(got, 100, 0.1) {
		t.Errorf("WeightedRatio reorder = %.2f, want 100", got)
	}
	// With single tokens every component degenerates to the ratio.
	if got := WeightedRatio("abcd", "abcx"); !approx(got, 75, 0.1) {
		t.Errorf("WeightedRatio typo = %.2f, want 75", got)
	}
	// Never below the plain ratio.
	a, b := "imported frozen shrimp", "shrimp"
	if WeightedRatio(a, b) < Ratio(a, b) {
		t.Error("WeightedRatio should dominate Ratio")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"ratio", "token_sort", "token_set", "weighted", ""} {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if fn == nil {
			t.Fatalf("ByName(%q) returned nil scorer", name)
		}
	}
	if _, err := ByName("soundex"); err == nil {
		t.Error("unknown scorer name should fail")
	}
}
