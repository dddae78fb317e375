package cfmt

import "fmt"

// flagSet records the single-character flags of a conversion specifier.
type flagSet uint8

const (
	flagAlternate flagSet = 1 << iota // '#'
	flagZeroPad                       // '0'
	flagLeftAlign                     // '-'
	flagSpaceSign                     // ' '
	flagPlusSign                      // '+'
)

// spec is one parsed conversion specifier. Width and prec are -1 when the
// format string left them unset. A spec is immutable once parsed and lives
// only for the duration of one argument's rendering.
type spec struct {
	flags flagSet
	width int
	prec  int
	verb  byte
}

// parseSpec parses the conversion specifier starting just past the '%'. It
// returns the parsed spec and the position just past the conversion letter.
//
// The grammar is the C99 one: %[flags][width][.precision][length]verb.
// Length modifiers are consumed and ignored; argument width is determined
// by the argument's own type. The first alphabetic character terminates
// the specifier and becomes the verb.
func parseSpec(format string, pos int) (spec, int, error) {
	sp := spec{width: -1, prec: -1}
	n := len(format)

flags:
	for pos < n {
		switch format[pos] {
		case '#':
			sp.flags |= flagAlternate
		case '0':
			sp.flags |= flagZeroPad
		case '-':
			sp.flags |= flagLeftAlign
		case ' ':
			sp.flags |= flagSpaceSign
		case '+':
			sp.flags |= flagPlusSign
		default:
			break flags
		}
		pos++
	}

	if pos < n && isDigit(format[pos]) {
		sp.width, pos = parseInt(format, pos)
	}
	if pos < n && format[pos] == '*' {
		return sp, pos, fmt.Errorf("%w: dynamic field width (*)", ErrUnsupportedFeature)
	}

	if pos < n && format[pos] == '.' {
		pos++
		switch {
		case pos < n && format[pos] == '*':
			return sp, pos, fmt.Errorf("%w: dynamic precision (.*)", ErrUnsupportedFeature)
		case pos < n && isDigit(format[pos]):
			sp.prec, pos = parseInt(format, pos)
		case pos < n && format[pos] == '-':
			// Negative precision: parsed and discarded, treated as absent.
			_, pos = parseInt(format, pos+1)
		default:
			// A dot with no digits means precision zero.
			sp.prec = 0
		}
	}

	for pos < n {
		c := format[pos]
		pos++
		if isLengthMod(c) {
			continue
		}
		if isAlpha(c) {
			sp.verb = c
			if c == 'n' {
				return sp, pos, fmt.Errorf("%w: %%n write-back conversion", ErrUnsupportedFeature)
			}
			return sp, pos, nil
		}
	}
	return sp, pos, fmt.Errorf("%w: specifier terminated by end of format string", ErrMalformedSpec)
}

// parseInt consumes a maximal run of decimal digits starting at pos.
func parseInt(format string, pos int) (int, int) {
	v := 0
	for pos < len(format) && isDigit(format[pos]) {
		v = 10*v + int(format[pos]-'0')
		pos++
	}
	return v, pos
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isLengthMod(c byte) bool {
	switch c {
	case 'l', 'h', 'L', 'j', 'z', 't':
		return true
	}
	return false
}
