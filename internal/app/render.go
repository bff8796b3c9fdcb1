package app

import (
	"fmt"
	"strings"

	"github.com/yamd1/wcr/internal/domain"
	"github.com/yamd1/wcr/internal/ports"
)

// TotalLabel names the aggregate line printed after several sources.
const TotalLabel = "total"

// fieldWidth includes the leading separator, so counts of any width stay
// apart.
const fieldWidth = 8

// FormatLine renders the selected counts of rec followed by name.
// Standard input is rendered without a name.
func FormatLine(rec domain.CountRecord, sel domain.Selection, name string) string {
	var b strings.Builder
	for _, v := range sel.Values(rec) {
		fmt.Fprintf(&b, " %*d", fieldWidth-1, v)
	}
	if name != "" && name != ports.Stdin {
		b.WriteByte(' ')
		b.WriteString(name)
	}
	return b.String()
}
