// Package coreutils holds the command table shared by the utilities in this
// module. Each utility registers a Runnable from its init function and the
// binaries dispatch to it by name.
package coreutils

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var cmdsMu sync.Mutex
var cmds = make(map[string]Runnable)

// Register makes a command available by name. It panics if name is already
// registered.
func Register(name string, r Runnable) {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	if _, ok := cmds[name]; ok {
		panic("Register called with identical name: " + name)
	}
	cmds[name] = r
}

// Commands returns the sorted names of every registered command.
func Commands() []string {
	cmdsMu.Lock()
	defer cmdsMu.Unlock()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Runnable func(ctx Context, args ...string) error

// Context is the environment a command runs in. Commands never touch the
// process-wide streams directly.
type Context struct {
	context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives diagnostics. A nil Logger discards everything.
	Logger *zap.Logger
}

// UnknownCommandError is returned by Run for a name nobody registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Name)
}

// Run looks up name and runs it with args. Unset fields of ctx are filled in
// with a background context, empty input, discarded output and a no-op
// logger.
func Run(ctx Context, name string, args ...string) error {
	cmdsMu.Lock()
	fn := cmds[name]
	cmdsMu.Unlock()
	if fn == nil {
		return &UnknownCommandError{Name: name}
	}
	if ctx.Context == nil {
		ctx.Context = context.Background()
	}
	if ctx.Stdin == nil {
		ctx.Stdin = eofReader{}
	}
	if ctx.Stdout == nil {
		ctx.Stdout = io.Discard
	}
	if ctx.Stderr == nil {
		ctx.Stderr = io.Discard
	}
	if ctx.Logger == nil {
		ctx.Logger = zap.NewNop()
	}
	return fn(ctx, args...)
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
