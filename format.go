package cfmt

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fprintf interprets format against args and writes the result to w. It is
// the error-returning core; [Sprintf], [Printf] and [Printer] layer
// abort-style error handling on top.
//
// Supplying more arguments than conversion specifiers is not an error; the
// extras are ignored. The reverse returns [ErrTooFewArguments]. Literal
// text written before an error is detected is not rolled back.
func Fprintf(w io.Writer, format string, args ...any) error {
	pos := 0
	for _, arg := range args {
		next, found, err := scanLiteral(w, format, pos)
		if err != nil {
			return err
		}
		pos = next
		if !found {
			// Format exhausted; trailing arguments are unused.
			return nil
		}
		sp, after, err := parseSpec(format, pos)
		if err != nil {
			return err
		}
		pos = after
		st, ex := stateFromSpec(sp)
		if err := renderArg(w, sp, st, ex, arg); err != nil {
			return err
		}
	}

	next, found, err := scanLiteral(w, format, pos)
	if err != nil {
		return err
	}
	if found {
		if next >= len(format) {
			return fmt.Errorf("%w: format string ends with a bare %%", ErrMalformedSpec)
		}
		return fmt.Errorf("%w: more conversion specifiers than arguments", ErrTooFewArguments)
	}
	return nil
}

// Sprintf builds the formatted result as a string. It panics on a malformed
// format string; use [Fprintf] to handle errors explicitly.
func Sprintf(format string, args ...any) string {
	var b strings.Builder
	if err := Fprintf(&b, format, args...); err != nil {
		panic(err)
	}
	return b.String()
}

// Printf writes the formatted result to standard output. It panics on a
// malformed format string; use [Fprintf] to handle errors explicitly.
func Printf(format string, args ...any) {
	if err := Fprintf(os.Stdout, format, args...); err != nil {
		panic(err)
	}
}
