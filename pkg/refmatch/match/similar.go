package match

import "github.com/safefeed/refmatch/pkg/refmatch/similarity"

// similarStage is the last rung: it scores the query against every value
// in every column and keeps the single best row across the whole table,
// provided the score reaches the cutoff. Unlike the earlier stages there
// is no column priority here; a better score in a later column beats an
// earlier one. On equal scores the value met first in column-then-row
// order is kept.
type similarStage struct {
	score  similarity.ScoreFunc
	cutoff float64
}

func (s similarStage) attempt(q string, t table) (int, bool) {
	best, bestScore := -1, 0.0
	for _, col := range t.cols {
		for i, v := range col.values {
			if v == "" {
				continue
			}
			if sc := s.score(q, v); sc > bestScore {
				best, bestScore = i, sc
			}
		}
	}
	if best >= 0 && bestScore >= s.cutoff {
		return best, true
	}
	return -1, false
}
