package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"newline":          {input: `a\nb`, want: "a\nb"},
		"tab":              {input: `a\tb`, want: "a\tb"},
		"backslash":        {input: `a\\n`, want: `a\n`},
		"unknown escape":   {input: `a\qb`, want: `a\qb`},
		"trailing slash":   {input: `ab\`, want: `ab\`},
		"no escapes":       {input: "plain", want: "plain"},
		"percent survives": {input: `%d%%\n`, want: "%d%%\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, unescape(tt.input))
		})
	}
}

func TestInferArg(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(42), inferArg("42"))
	assert.Equal(t, int64(-7), inferArg("-7"))
	assert.Equal(t, 2.5, inferArg("2.5"))
	assert.Equal(t, "word", inferArg("word"))
	assert.Equal(t, "1.2.3", inferArg("1.2.3"))
}
