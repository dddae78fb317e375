// Package cfmt interprets C99 printf-style format strings against a typed
// argument list, without unchecked variadic access.
//
// The central entry points are [Fprintf], [Sprintf], and [Printf]. Fprintf
// writes to any io.Writer and returns an error; Sprintf and Printf treat a
// bad format string as a programmer error and panic. A [Printer] makes the
// error policy injectable.
//
// # Format grammar
//
// Specifiers follow the C99 form %[flags][width][.precision][length]verb:
//
//   - Flags: '#' (alternate form), '0' (zero pad), '-' (left align),
//     ' ' (space before positive values), '+' (always sign). '+'
//     overrides ' ', and '-' overrides '0'.
//   - Width: minimum field width, measured in display cells.
//   - Precision: digits after the point for %f/%e, significant digits for
//     %g, maximum characters for %s, minimum digits for integer verbs.
//   - Length modifiers (l h L j z t) are accepted and ignored; the
//     argument's own type decides its width.
//
// Verbs: %d %i %u (decimal), %o (octal), %x %X (hex), %e %E (scientific),
// %f %F (fixed), %g %G (shortest), %c (character), %s (text), %p
// (address). %% is a literal percent. Unrecognized letters terminate the
// specifier and render the argument with its default representation, so
// %v behaves as expected. %a and %A are accepted but not emulated.
//
// Rendering is driven by the argument's type rather than the verb: %s on
// an int prints the number, %d on a float prints the float. byte and rune
// are treated as character types; they print numerically under integer
// verbs and as a glyph otherwise.
//
// # Extension Interfaces
//
// Values render through their own textual representation: [fmt.Stringer]
// or error when implemented, otherwise a kind-driven rendering. Optional
// interfaces override the special conversions:
//
//   - [Charer] → %c for types that narrow to a single character
//   - [Addresser] → %p for types with an address identity
//   - [Truncator] → %.Ns without reading past the first N characters
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedSpec] — '%' not followed by a complete specifier
//   - [ErrTooFewArguments] — more specifiers than arguments
//   - [ErrUnsupportedFeature] — dynamic width/precision ('*') or %n
//
// Extra arguments beyond the last specifier are ignored. These errors are
// fatal by default: Sprintf and Printf panic, and a Printer invokes its
// [ErrorHandler].
package cfmt
