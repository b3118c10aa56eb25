package wc

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"

	coreutils "github.com/gowc/coreutils"
	flag "github.com/spf13/pflag"
)

func init() {
	coreutils.Register("wc", run)
}

const (
	Version = `wc (go-coreutils) 3.0
License GPLv3+: GNU GPL version 3 or later <http://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`

	Help = `Usage: wc [OPTION]... [FILE]

Print newline, word, and byte counts for FILE.  With no FILE, or when FILE
is -, read standard input.  A word is a non-zero-length sequence of bytes
delimited by ASCII white space.
The options below may be used to select which counts are printed, always in
the following order: newline, word, byte, character.  Short options are not
case sensitive.
  -c, --bytes            print the byte counts
  -m, --chars            print the character counts
  -l, --lines            print the newline counts
  -w, --words            print the word counts
      --debug            log what wc is doing to standard error
  -h, --help             display this help and exit
  -u, --unicode-version  display unicode version used and exit
      --version          output version information and exit
`
)

// Sentinel long names for the upper case shorthands, so -L works like -l.
// checkSentinels rejects them when spelled out as long options.
const (
	uniNonChar = 0xFDD0
	upperBytes = string(rune(uniNonChar + 1))
	upperChars = string(rune(uniNonChar + 2))
	upperLines = string(rune(uniNonChar + 3))
	upperWords = string(rune(uniNonChar + 4))
)

func newCommand() *cmd {
	var c cmd
	c.f.Init("wc", flag.ContinueOnError)
	c.f.SetInterspersed(true)
	c.f.SetOutput(io.Discard)
	c.f.Usage = func() {}

	c.f.BoolVarP(&c.lines, "lines", "l", false, "print the newline counts")
	c.f.BoolVarP(&c.lines, upperLines, "L", false, "print the newline counts")
	c.f.BoolVarP(&c.words, "words", "w", false, "print the word counts")
	c.f.BoolVarP(&c.words, upperWords, "W", false, "print the word counts")
	c.f.BoolVarP(&c.chars, "chars", "m", false, "print the character counts")
	c.f.BoolVarP(&c.chars, upperChars, "M", false, "print the character counts")
	c.f.BoolVarP(&c.bytes, "bytes", "c", false, "print the byte counts")
	c.f.BoolVarP(&c.bytes, upperBytes, "C", false, "print the byte counts")
	for _, name := range []string{upperBytes, upperChars, upperLines, upperWords} {
		c.f.MarkHidden(name)
	}

	c.f.BoolVar(&c.debug, "debug", false, "log what wc is doing to standard error")
	c.f.BoolVarP(&c.help, "help", "h", false, "display this help and exit")
	c.f.BoolVarP(&c.unicode, "unicode-version", "u", false, "display unicode version and exit")
	c.f.BoolVar(&c.version, "version", false, "output version information and exit")
	return &c
}

type cmd struct {
	f                          flag.FlagSet
	lines, words, chars, bytes bool
	debug, help                bool
	unicode, version           bool
}

// checkSentinels returns an error if args spell out one of the sentinel long
// names, which pflag would otherwise accept.
func checkSentinels(args []string) error {
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		switch name {
		case upperBytes, upperChars, upperLines, upperWords:
			return fmt.Errorf("unknown flag: --%s", name)
		}
	}
	return nil
}

// modes returns the modes selected on the command line, which may be empty.
func (c *cmd) modes() Mode {
	var opts Mode
	if c.lines {
		opts |= Lines
	}
	if c.words {
		opts |= Words
	}
	if c.bytes {
		opts |= Bytes
	}
	if c.chars {
		opts |= Chars
	}
	return opts
}

// path returns the last operand. Earlier operands are ignored.
func (c *cmd) path(log *zap.Logger) string {
	args := c.f.Args()
	if len(args) == 0 {
		return ""
	}
	if len(args) > 1 {
		log.Warn("ignoring extra operands", zap.Strings("operands", args[:len(args)-1]))
	}
	return args[len(args)-1]
}

func run(ctx coreutils.Context, args ...string) error {
	c := newCommand()
	if err := checkSentinels(args); err != nil {
		return fail(ctx, &UsageError{Err: err})
	}
	if err := c.f.Parse(args); err != nil {
		return fail(ctx, &UsageError{Err: err})
	}

	switch {
	case c.help:
		_, err := io.WriteString(ctx.Stdout, Help)
		return err
	case c.version:
		_, err := io.WriteString(ctx.Stdout, Version)
		return err
	case c.unicode:
		_, err := fmt.Fprintf(ctx.Stdout, "Unicode version: %s\n", unicode.Version)
		return err
	}

	log := ctx.Logger
	if c.debug {
		log = coreutils.NewLogger(ctx.Stderr, true)
		defer log.Sync()
	}
	log = log.Named("wc")

	req := Request{Modes: EffectiveModes(c.modes())}
	path := c.path(log)

	if err := ctx.Err(); err != nil {
		return fail(ctx, err)
	}
	src, err := resolve(log, path, ctx.Stdin)
	if err != nil {
		return fail(ctx, err)
	}
	req.Source = src
	log.Debug("resolved input",
		zap.String("path", src.Path),
		zap.Bool("stdin", !src.FromFile()),
		zap.Int("bytes", len(src.Data)),
		zap.Stringer("modes", req.Modes),
	)

	if err := ctx.Err(); err != nil {
		return fail(ctx, err)
	}
	res, err := NewCounter(req.Modes).Count(req.Source.Data)
	if err != nil {
		return fail(ctx, err)
	}
	if err := writeCounts(ctx.Stdout, req.Modes, res, req.Source.Path); err != nil {
		return fail(ctx, err)
	}
	return nil
}

// fail reports err as a single diagnostic line and returns it.
func fail(ctx coreutils.Context, err error) error {
	fmt.Fprintf(ctx.Stderr, "wc: %v\n", err)
	return err
}
