package descent

import (
	"errors"
	"strings"
)

// Annotate renders a diagnostic for an evaluation error, pointing a caret at
// the offending position in the input:
//
//	1 + 2 / (3-3)
//	        ^
//	division by 0
//
// If err carries no position information, the result is err.Error().
func Annotate(src string, err error) string {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	off := pe.Offset
	if off > len(src) {
		off = len(src)
	}
	var b strings.Builder
	b.Grow(len(src) + off + len(pe.Kind.String()) + 3)
	b.WriteString(src)
	b.WriteByte('\n')
	for i := 0; i < off; i++ {
		b.WriteByte(' ')
	}
	b.WriteString("^\n")
	b.WriteString(pe.Kind.String())
	return b.String()
}
