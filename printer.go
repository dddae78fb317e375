package cfmt

import (
	"io"
	"os"
	"strings"
)

// ErrorHandler receives formatting errors from a [Printer]. Format strings
// are a build-time contract, so these are programmer errors rather than
// runtime conditions; the default handler panics.
type ErrorHandler func(err error)

// Option configures a [Printer].
type Option func(*Printer)

// WithErrorHandler replaces the default abort-style error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Printer) { p.onError = h }
}

// WithOutput sets the destination for [Printer.Printf].
// Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) { p.out = w }
}

// Printer binds the convenience entry points to an output and an error
// handler. It holds no other state and is safe for concurrent use as long
// as the output is.
type Printer struct {
	out     io.Writer
	onError ErrorHandler
}

// New returns a Printer with the given options applied.
func New(opts ...Option) *Printer {
	p := &Printer{
		out:     os.Stdout,
		onError: func(err error) { panic(err) },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fprintf renders to w, reporting errors through the configured handler.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) {
	if err := Fprintf(w, format, args...); err != nil {
		p.onError(err)
	}
}

// Printf renders to the configured output.
func (p *Printer) Printf(format string, args ...any) {
	p.Fprintf(p.out, format, args...)
}

// Sprintf renders to a string. If the handler returns after an error, the
// partial output produced so far is returned.
func (p *Printer) Sprintf(format string, args ...any) string {
	var b strings.Builder
	p.Fprintf(&b, format, args...)
	return b.String()
}
