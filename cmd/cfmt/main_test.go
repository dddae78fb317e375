package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/cfmt"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{`%s=%05.1f%%\n`, "disk", "93.25"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "disk=093.2%\n", out.String())
}

func TestRootCmdTooFewArguments(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"%d %d", "1"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, cfmt.ErrTooFewArguments)
}
