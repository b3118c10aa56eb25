package wc

import (
	"bytes"
	"unicode/utf8"
)

// Results holds the counts for a single input. Fields for modes that were
// not requested are left at zero.
type Results struct {
	Lines int64
	Words int64
	Chars int64
	Bytes int64
}

// Get returns the count for a single mode.
func (r Results) Get(m Mode) int64 {
	switch m {
	case Lines:
		return r.Lines
	case Words:
		return r.Words
	case Bytes:
		return r.Bytes
	case Chars:
		return r.Chars
	}
	return 0
}

// Values returns one count per mode in modes, in output order.
func (r Results) Values(modes Mode) []int64 {
	list := modes.List()
	vals := make([]int64, len(list))
	for i, m := range list {
		vals[i] = r.Get(m)
	}
	return vals
}

// Counter computes the requested counts over a fully read input.
type Counter struct {
	opts Mode
}

// NewCounter returns a Counter for opts. An empty opts counts DefaultModes.
func NewCounter(opts Mode) *Counter {
	return &Counter{opts: EffectiveModes(opts)}
}

var newLine = []byte{'\n'}

// Count computes every requested count over data. data is not modified.
// Bytes and Lines never fail; Words and Chars fail with an *EncodingError
// if data is not valid UTF-8.
func (c *Counter) Count(data []byte) (res Results, err error) {
	if c.opts.needsText() {
		if off := invalidOffset(data); off >= 0 {
			m := Words
			if !c.opts.Has(Words) {
				m = Chars
			}
			return Results{}, &EncodingError{Mode: m, Offset: off}
		}
	}
	if c.opts.Has(Bytes) {
		res.Bytes = int64(len(data))
	}
	if c.opts.Has(Lines) {
		res.Lines = countLines(data)
	}
	if c.opts.Has(Words) {
		res.Words = countWords(data)
	}
	if c.opts.Has(Chars) {
		res.Chars = int64(utf8.RuneCount(data))
	}
	return res, nil
}

// countLines counts newlines, plus a final line that has no terminator.
func countLines(data []byte) int64 {
	n := int64(bytes.Count(data, newLine))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// countWords counts maximal runs of bytes that are not ASCII whitespace.
// Multi-byte sequences never contain ASCII bytes, so a byte scan is enough.
func countWords(data []byte) (words int64) {
	var inword int64
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			words += inword
			inword = 0
		default:
			inword = 1
		}
	}
	return words + inword
}

// invalidOffset returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1 if data is valid.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for bp := 0; bp < len(data); {
		r, s := utf8.DecodeRune(data[bp:])
		if r == utf8.RuneError && s == 1 {
			return bp
		}
		bp += s
	}
	return -1
}
