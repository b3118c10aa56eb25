package wc

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gowc/coreutils/wc/internal/sys"
)

// Source is the fully read input. Path is empty when Data came from
// standard input.
type Source struct {
	Path string
	Data []byte
}

// FromFile reports whether the Source was read from a named file.
func (s Source) FromFile() bool { return s.Path != "" }

// Request is everything a single run needs: what to count and what to count
// it over.
type Request struct {
	Modes  Mode
	Source Source
}

// ReadFile reads the whole of path into memory.
func ReadFile(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return Source{}, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	sys.Fadvise(int(file.Fd()))

	var buf bytes.Buffer
	if n, ok := statSize(file); ok {
		buf.Grow(int(n) + bytes.MinRead)
	}
	if _, err := buf.ReadFrom(file); err != nil {
		return Source{}, &IOError{Path: path, Err: err}
	}
	return Source{Path: path, Data: buf.Bytes()}, nil
}

// ReadStream reads r until EOF.
func ReadStream(r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, &IOError{Err: err}
	}
	return Source{Data: data}, nil
}

// resolve reads path, or stdin when path is empty or "-".
func resolve(log *zap.Logger, path string, stdin io.Reader) (Source, error) {
	if path == "" || path == "-" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			log.Debug("reading standard input from a terminal until EOF")
		}
		return ReadStream(stdin)
	}
	return ReadFile(path)
}

// statSize returns the size of file if it is a regular file.
func statSize(file *os.File) (n int64, ok bool) {
	stat, err := file.Stat()
	if err != nil {
		return 0, false
	}
	if !stat.Mode().IsRegular() {
		return 0, false
	}
	return stat.Size(), true
}
