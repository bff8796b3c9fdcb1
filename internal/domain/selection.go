package domain

// Selection lists the metrics to display. The order of display is fixed:
// lines, words, bytes, chars.
type Selection struct {
	Lines bool
	Words bool
	Bytes bool
	Chars bool
}

// DefaultSelection is used when no metric was requested.
func DefaultSelection() Selection {
	return Selection{Lines: true, Words: true, Bytes: true}
}

// Empty reports whether no metric is selected.
func (s Selection) Empty() bool {
	return !s.Lines && !s.Words && !s.Bytes && !s.Chars
}

// Values returns the selected counts of r in display order.
func (s Selection) Values(r CountRecord) []int64 {
	vals := make([]int64, 0, 4)
	if s.Lines {
		vals = append(vals, r.Lines)
	}
	if s.Words {
		vals = append(vals, r.Words)
	}
	if s.Bytes {
		vals = append(vals, r.Bytes)
	}
	if s.Chars {
		vals = append(vals, r.Chars)
	}
	return vals
}
