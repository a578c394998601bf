package match

import (
	"strings"

	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
)

// scanStage handles narrative text: it looks for reference values
// embedded anywhere in the passage and keeps the longest one found,
// counting runes. "E. coli" beats "coli" when both occur. On equal
// length the value met first in column-then-row order is kept.
type scanStage struct{}

func (scanStage) attempt(q string, t table) (int, bool) {
	best, bestLen := -1, 0
	for _, col := range t.cols {
		for i, v := range col.values {
			if v == "" || !strings.Contains(q, v) {
				continue
			}
			if n := normalize.Length(v); n > bestLen {
				best, bestLen = i, n
			}
		}
	}
	return best, best >= 0
}
