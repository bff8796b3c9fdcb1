package domain

// CountRecord holds the four counts produced by scanning one source.
// Totals are built by adding records; the zero value is the empty total.
type CountRecord struct {
	// Lines is the number of newline bytes
	Lines int64

	// Words is the number of maximal runs of non-whitespace characters
	Words int64

	// Bytes is the number of raw bytes read
	Bytes int64

	// Chars is the number of decoded codepoints
	Chars int64
}

// Add returns the field-wise sum of c and o.
func (c CountRecord) Add(o CountRecord) CountRecord {
	return CountRecord{
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
		Bytes: c.Bytes + o.Bytes,
		Chars: c.Chars + o.Chars,
	}
}

// IsZero reports whether every count is zero.
func (c CountRecord) IsZero() bool {
	return c == CountRecord{}
}
