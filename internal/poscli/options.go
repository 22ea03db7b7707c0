// internal/poscli/options.go
package poscli

import (
	"errors"
	"flag"
	"fmt"

	"examgen/internal/cliutil"
	"examgen/internal/config"
	"examgen/internal/version"
)

// DefaultTitle heads the document when neither --title nor
// EXAMGEN_TITLE is set.
const DefaultTitle = "My Custom Exam"

// Options holds all CLI flags and arguments for examgen-pos.
type Options struct {
	Input   string // positional vocab file, or '-' for stdin
	Seed    int64
	Title   string
	Start   int
	Version bool
}

// NewFlagSet returns a FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: build a multiple-choice exam from a POS-tagged vocab file

One entry per line: <headword> <meaning> <part-of-speech> [tags...],
e.g. "circa around preposition acc". Wrong answers are drawn from
entries sharing the part of speech first. The exam is written to
standard output.

Version: %s

Usage: %s [flags] <vocab-file>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags.
func ParseArgs(fs *flag.FlagSet, argv []string, defaults config.Config) (Options, error) {
	var opt Options
	var help bool

	title := defaults.Title
	if title == "" {
		title = DefaultTitle
	}

	fs.Int64Var(&opt.Seed, "seed", defaults.Seed, "random seed for reproducible exams [42]")
	fs.StringVar(&opt.Title, "title", title, "title line for the document ["+DefaultTitle+"]")
	fs.IntVar(&opt.Start, "start", defaults.StartIndex, "number of the first question [1]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		return opt, errors.New("input vocab file required")
	case 1:
		opt.Input = posArgs[0]
	default:
		return opt, fmt.Errorf("unexpected extra arguments: %v", posArgs[1:])
	}
	if opt.Start < 1 {
		return opt, errors.New("--start must be ≥ 1")
	}
	return opt, nil
}
