package wc

import "strings"

// Mode is a set of counts to report. The zero Mode requests nothing and is
// replaced by DefaultModes before counting.
type Mode uint8

const (
	Lines Mode = 1 << iota // count lines
	Words                  // count words
	Bytes                  // count bytes
	Chars                  // count UTF-8 encoded characters
)

// DefaultModes is what wc prints when no mode flag is given.
const DefaultModes = Lines | Words | Bytes

// order is the fixed column order, regardless of the order flags were given
// on the command line.
var order = [...]Mode{Lines, Words, Bytes, Chars}

// EffectiveModes returns m, or DefaultModes if m is empty.
func EffectiveModes(m Mode) Mode {
	if m&(Lines|Words|Bytes|Chars) == 0 {
		return DefaultModes
	}
	return m
}

// Has reports whether every mode in x is set in m.
func (m Mode) Has(x Mode) bool { return x != 0 && m&x == x }

// List returns the individual modes in m in output order.
func (m Mode) List() []Mode {
	var list []Mode
	for _, x := range order {
		if m&x != 0 {
			list = append(list, x)
		}
	}
	return list
}

// needsText reports whether m contains a mode that requires valid UTF-8.
func (m Mode) needsText() bool { return m&(Words|Chars) != 0 }

func (m Mode) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, x := range m.List() {
		switch x {
		case Lines:
			names = append(names, "lines")
		case Words:
			names = append(names, "words")
		case Bytes:
			names = append(names, "bytes")
		case Chars:
			names = append(names, "chars")
		}
	}
	return strings.Join(names, "|")
}
