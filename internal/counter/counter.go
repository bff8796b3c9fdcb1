// Package counter implements the single-pass counting engine.
package counter

import (
	"bufio"
	"errors"
	"io"

	"github.com/yamd1/wcr/internal/domain"
)

const bufSize = 32 * 1024

// Count reads r to EOF and returns its line, word, byte and character
// counts. Lines are newline bytes, so a final line without a terminating
// newline is not counted as a line. Words are separated by ASCII
// whitespace only. Every byte of an invalid UTF-8 sequence counts as one
// character.
//
// Any read error other than io.EOF is returned with a zero record.
func Count(r io.Reader) (domain.CountRecord, error) {
	var (
		rec    domain.CountRecord
		inWord bool
	)

	br := bufio.NewReaderSize(r, bufSize)
	for {
		c, size, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return domain.CountRecord{}, err
		}

		rec.Bytes += int64(size)
		rec.Chars++
		if c == '\n' {
			rec.Lines++
		}

		if IsSpace(c) {
			inWord = false
		} else if !inWord {
			inWord = true
			rec.Words++
		}
	}

	return rec, nil
}

// IsSpace reports whether c separates words: space, \t, \n, \v, \f or \r.
func IsSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
