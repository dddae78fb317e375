package cfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrMalformedSpec reports a '%' that is not followed by a complete,
	// letter-terminated conversion specifier before the format string ends.
	ErrMalformedSpec = errors.New("malformed conversion specifier")

	// ErrTooFewArguments reports a format string with more conversion
	// specifiers than arguments. The reverse is not an error: extra
	// arguments are silently ignored.
	ErrTooFewArguments = errors.New("too few arguments")

	// ErrUnsupportedFeature reports a request for dynamic width or
	// precision ('*') or the %n conversion.
	ErrUnsupportedFeature = errors.New("unsupported conversion feature")
)

// --- Extension Interfaces ---

// Charer overrides %c rendering. Implement it on types that can narrow to a
// single character. Without it, %c accepts any value of integer kind.
type Charer interface {
	Char() rune
}

// Addresser overrides %p rendering. Implement it on types that have an
// address identity but are not pointer-shaped. The address is rendered as
// hexadecimal with a "0x" prefix and is never dereferenced.
type Addresser interface {
	Addr() uintptr
}

// Truncator supports %.Ns on sequence-like types without reading past the
// first n characters. Truncate reports at most the first n characters of
// the value's text. Without it, truncation slices the fully rendered text.
type Truncator interface {
	Truncate(n int) string
}
