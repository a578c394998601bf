package match

// exactStage matches by canonical equality. Columns are consulted in
// order and the first column holding any equal value decides: the first
// equal row in that column wins and later columns are never examined.
type exactStage struct{}

func (exactStage) attempt(q string, t table) (int, bool) {
	for _, col := range t.cols {
		for i, v := range col.values {
			if v == q {
				return i, true
			}
		}
	}
	return -1, false
}
