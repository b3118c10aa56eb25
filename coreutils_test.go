package coreutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndRun(t *testing.T) {
	Register("test-echo", func(ctx Context, args ...string) error {
		require.NotNil(t, ctx.Context)
		require.NotNil(t, ctx.Logger)
		in, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return err
		}
		_, err = ctx.Stdout.Write(append(in, []byte(args[0])...))
		return err
	})
	assert.Contains(t, Commands(), "test-echo")

	var out bytes.Buffer
	err := Run(Context{Stdin: bytes.NewReader([]byte("in:")), Stdout: &out}, "test-echo", "arg")
	require.NoError(t, err)
	assert.Equal(t, "in:arg", out.String())

	// Unset streams are replaced, not left nil.
	require.NoError(t, Run(Context{}, "test-echo", "discarded"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(Context, ...string) error { return nil })
	assert.Panics(t, func() {
		Register("test-dup", func(Context, ...string) error { return nil })
	})
}

func TestRunUnknown(t *testing.T) {
	err := Run(Context{}, "no-such-command")
	var unknown *UnknownCommandError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no-such-command", unknown.Name)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown")
	require.NoError(t, log.Sync())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN\tshown")

	buf.Reset()
	log = NewLogger(&buf, true)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG\tvisible")
}
