package cfmt

// alignment selects where fill characters go relative to the rendered value.
type alignment int

const (
	alignRight    alignment = iota
	alignLeft               // '-' flag
	alignInternal           // fill between the sign or base prefix and the digits
)

// sinkState is the per-argument output configuration derived from one
// conversion specifier. It is rebuilt from defaults for every argument, so
// one specifier's configuration never leaks into the next literal run or
// argument.
type sinkState struct {
	align    alignment
	fill     byte
	base     int  // 10, 8 or 16
	notation byte // strconv float verb: 'g', 'f' or 'e'
	upper    bool
	plus     bool // render non-negative decimal values with a leading '+'
	alt      bool // '#': base prefix for integers, forced point for floats
	width    int  // 0 means no minimum field width
	prec     int
	precSet  bool
}

// extraFlags marks the two behaviors with no sinkState equivalent. They are
// emulated by post-processing an intermediate buffer in the renderer.
type extraFlags struct {
	truncate bool // limit string-like output to prec characters
	spacePad bool // rewrite a leading '+' to a space
}

// stateFromSpec maps a parsed conversion specifier onto output state,
// starting from the C99 defaults: precision 6, space fill, right alignment,
// decimal base, general float notation.
func stateFromSpec(sp spec) (sinkState, extraFlags) {
	st := sinkState{align: alignRight, fill: ' ', base: 10, notation: 'g', prec: 6}
	var ex extraFlags

	if sp.flags&flagAlternate != 0 {
		st.alt = true
	}
	if sp.flags&flagZeroPad != 0 {
		// Internal padding keeps the sign outside the zero fill,
		// eg -00010 rather than 000-10.
		st.fill = '0'
		st.align = alignInternal
	}
	if sp.flags&flagLeftAlign != 0 {
		// Left alignment always wins over zero padding.
		st.fill = ' '
		st.align = alignLeft
	}
	if sp.flags&flagPlusSign != 0 {
		st.plus = true
	}
	if sp.flags&flagSpaceSign != 0 && sp.flags&flagPlusSign == 0 {
		// Emulated by rendering with a forced sign and rewriting it
		// afterwards.
		st.plus = true
		ex.spacePad = true
	}
	if sp.width > 0 {
		st.width = sp.width
	}
	if sp.prec >= 0 {
		st.prec = sp.prec
		st.precSet = true
	}

	intConv := false
	switch sp.verb {
	case 'd', 'i', 'u':
		intConv = true
	case 'o':
		st.base = 8
		intConv = true
	case 'X':
		st.upper = true
		st.base = 16
		intConv = true
	case 'x', 'p':
		st.base = 16
		intConv = true
	case 'E':
		st.upper = true
		st.notation = 'e'
	case 'e':
		st.notation = 'e'
	case 'F':
		st.upper = true
		st.notation = 'f'
	case 'f':
		st.notation = 'f'
	case 'G':
		st.upper = true
	case 'g':
		// General notation is already the default.
	case 'a', 'A':
		// C99 hexadecimal floats are not emulated; the value falls
		// through to the default rendering untouched.
	case 's':
		if st.precSet {
			ex.truncate = true
		}
	}

	if intConv && st.precSet && sp.width < 0 {
		// For integer conversions "precision" means minimum digits.
		// Emulate with zero fill inside the sign.
		st.width = st.prec
		st.align = alignInternal
		st.fill = '0'
	}
	return st, ex
}
