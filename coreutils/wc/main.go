// Command wc prints line, word, byte and character counts for a file or
// standard input.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gowc/coreutils"

	_ "github.com/gowc/coreutils/wc"
)

func main() {
	os.Exit(realMain(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// realMain runs wc and returns the exit status. No signal handlers are
// installed, so an interrupt during the read ends the process.
func realMain(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	log := coreutils.NewLogger(stderr, false)
	defer log.Sync()

	ctx := coreutils.Context{
		Context: context.Background(),
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  log,
	}
	return exitStatus(stderr, coreutils.Run(ctx, "wc", args...))
}

func exitStatus(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var unknown *coreutils.UnknownCommandError
	if errors.As(err, &unknown) {
		fmt.Fprintf(stderr, "%v (have: %s)\n", err, strings.Join(coreutils.Commands(), ", "))
	}
	return 1
}
