package match

// stage is one rung of the resolution ladder. attempt returns the index
// of the matched row, or false when the stage finds nothing and the
// cascade should fall through to the next one.
type stage interface {
	attempt(q string, t table) (int, bool)
}

func runCascade(q string, t table, stages []stage) (int, bool) {
	for _, s := range stages {
		if row, ok := s.attempt(q, t); ok {
			return row, true
		}
	}
	return -1, false
}
