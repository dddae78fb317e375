package cfmt

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderArg renders one argument under the given output state and writes it
// to w honoring width and alignment. Behaviors marked in ex have no direct
// state equivalent and are applied to the rendered text before padding.
func renderArg(w io.Writer, sp spec, st sinkState, ex extraFlags, arg any) error {
	body, textual := renderBody(sp, st, ex, arg)
	if ex.truncate && textual {
		body = truncateRunes(body, st.prec)
	}
	if ex.spacePad && strings.HasPrefix(body, "+") {
		body = " " + body[1:]
	}
	return writePadded(w, body, st)
}

// renderBody produces the unpadded text for one argument. The boolean
// reports whether the result is a contiguous character sequence, the only
// kind of content precision truncation applies to.
func renderBody(sp spec, st sinkState, ex extraFlags, arg any) (string, bool) {
	if arg == nil {
		return "<nil>", false
	}

	if sp.verb == 'c' {
		if c, ok := arg.(Charer); ok {
			return string(c.Char()), false
		}
		if r, ok := charValue(arg); ok {
			return string(r), false
		}
	}
	if sp.verb == 'p' {
		if a, ok := arg.(Addresser); ok {
			return formatAddr(uint64(a.Addr()), st), false
		}
		if addr, ok := addrValue(arg); ok {
			return formatAddr(addr, st), false
		}
	}

	// byte and rune are Go's narrow character types: numeric under the
	// integer verbs, a glyph under everything else.
	switch v := arg.(type) {
	case rune:
		if isIntVerb(sp.verb) {
			return formatInt(int64(v), st), false
		}
		return string(v), true
	case byte:
		if isIntVerb(sp.verb) {
			return formatUint(uint64(v), st), false
		}
		return string(rune(v)), true
	}

	if ex.truncate {
		if t, ok := arg.(Truncator); ok {
			// Never reads past the first prec characters.
			return t.Truncate(st.prec), true
		}
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String(), true
	}
	if e, ok := arg.(error); ok {
		return e.Error(), true
	}

	switch v := arg.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case []rune:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), false
	case int:
		return formatInt(int64(v), st), false
	case int8:
		return formatInt(int64(v), st), false
	case int16:
		return formatInt(int64(v), st), false
	case int64:
		return formatInt(v, st), false
	case uint:
		return formatUint(uint64(v), st), false
	case uint16:
		return formatUint(uint64(v), st), false
	case uint32:
		return formatUint(uint64(v), st), false
	case uint64:
		return formatUint(v, st), false
	case uintptr:
		return formatUint(uint64(v), st), false
	case float32:
		return formatFloat(float64(v), 32, st), false
	case float64:
		return formatFloat(v, 64, st), false
	}

	// Named types reduce to their underlying kind.
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return formatInt(rv.Int(), st), false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return formatUint(rv.Uint(), st), false
	case reflect.Float32:
		return formatFloat(rv.Float(), 32, st), false
	case reflect.Float64:
		return formatFloat(rv.Float(), 64, st), false
	}
	return fmt.Sprint(arg), false
}

// charValue narrows a value of integer kind to a single character.
func charValue(arg any) (rune, bool) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rune(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rune(rv.Uint()), true
	}
	return 0, false
}

// addrValue extracts the address identity of a pointer-shaped value without
// reading through it. Dangling references stay safe to print.
func addrValue(arg any) (uint64, bool) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return uint64(rv.Pointer()), true
	case reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}

func formatAddr(addr uint64, st sinkState) string {
	digits := strconv.FormatUint(addr, 16)
	if st.upper {
		return "0X" + strings.ToUpper(digits)
	}
	return "0x" + digits
}

func formatInt(v int64, st sinkState) string {
	return finishInt(strconv.FormatInt(v, st.base), v >= 0, st)
}

func formatUint(v uint64, st sinkState) string {
	return finishInt(strconv.FormatUint(v, st.base), true, st)
}

// finishInt applies case, the alternate-form base prefix, and the forced
// sign to a bare integer rendering.
func finishInt(s string, nonNegative bool, st sinkState) string {
	if st.upper {
		s = strings.ToUpper(s)
	}
	if st.alt {
		neg := strings.HasPrefix(s, "-")
		digits := strings.TrimPrefix(s, "-")
		switch {
		case st.base == 8 && !strings.HasPrefix(digits, "0"):
			digits = "0" + digits
		case st.base == 16 && digits != "0" && st.upper:
			digits = "0X" + digits
		case st.base == 16 && digits != "0":
			digits = "0x" + digits
		}
		s = digits
		if neg {
			s = "-" + digits
		}
	}
	if st.plus && st.base == 10 && nonNegative {
		s = "+" + s
	}
	return s
}

func formatFloat(f float64, bits int, st sinkState) string {
	prec := st.prec
	if st.notation == 'g' && prec == 0 {
		// C99: zero precision in general notation means one significant
		// digit.
		prec = 1
	}
	s := strconv.FormatFloat(f, st.notation, prec, bits)
	if st.alt && !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	if st.upper {
		s = strings.ToUpper(s)
	}
	if st.plus && !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return s
}

func isIntVerb(verb byte) bool {
	switch verb {
	case 'u', 'd', 'i', 'o', 'X', 'x':
		return true
	}
	return false
}

// truncateRunes cuts s after at most n characters. Characters are runes,
// not bytes, so multi-byte text is never split mid-character.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// writePadded writes body to w padded to the minimum field width. Padding
// is measured in display cells so wide characters fill the field correctly.
func writePadded(w io.Writer, body string, st sinkState) error {
	gap := st.width - runewidth.StringWidth(body)
	if gap <= 0 {
		_, err := io.WriteString(w, body)
		return err
	}
	fill := strings.Repeat(string(st.fill), gap)
	switch st.align {
	case alignLeft:
		body += fill
	case alignInternal:
		i := internalSplit(body)
		body = body[:i] + fill + body[i:]
	default:
		body = fill + body
	}
	_, err := io.WriteString(w, body)
	return err
}

// internalSplit returns the offset after any sign and base prefix, the
// point where internal fill is inserted.
func internalSplit(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-' || s[i] == ' ') {
		i++
	}
	if len(s) >= i+2 && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
	}
	return i
}
