package cfmt

import (
	"io"
	"strings"
)

// scanLiteral writes the literal run starting at pos to w, collapsing each
// "%%" escape into a single '%'. It returns the next read position and
// whether an unescaped '%' introduced a conversion specifier; when it did,
// the returned position is just past the '%'.
//
// A bare '%' at the very end of the string is not diagnosed here; the
// specifier parser reports it on the next step.
func scanLiteral(w io.Writer, format string, pos int) (int, bool, error) {
	for pos < len(format) {
		i := strings.IndexByte(format[pos:], '%')
		if i < 0 {
			_, err := io.WriteString(w, format[pos:])
			return len(format), false, err
		}
		if i > 0 {
			if _, err := io.WriteString(w, format[pos:pos+i]); err != nil {
				return pos, false, err
			}
		}
		pos += i + 1
		if pos < len(format) && format[pos] == '%' {
			if _, err := io.WriteString(w, "%"); err != nil {
				return pos, false, err
			}
			pos++
			continue
		}
		return pos, true, nil
	}
	return pos, false, nil
}
