package wc

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError is returned when the input file or standard input cannot be read.
type IOError struct {
	Path string // empty for standard input
	Err  error
}

func (e *IOError) Error() string {
	name := e.Path
	if name == "" {
		name = "standard input"
	}
	return fmt.Sprintf("%s: %v", name, unwrapPath(e.Err))
}

func (e *IOError) Unwrap() error { return e.Err }

// EncodingError is returned when Words or Chars is requested and the input is
// not valid UTF-8.
type EncodingError struct {
	Mode   Mode // the mode that required decoding
	Offset int  // offset of the first invalid byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot count %s: invalid UTF-8 at byte offset %d", e.Mode, e.Offset)
}

// UsageError wraps a command line the flag parser rejected.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// unwrapPath drops the operation and path from a *fs.PathError, since
// IOError already names the path.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
