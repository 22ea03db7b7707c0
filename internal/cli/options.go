// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"examgen/internal/cliutil"
	"examgen/internal/config"
	"examgen/internal/version"
)

// Options holds all CLI flags and arguments for examgen.
type Options struct {
	Input     string // positional vocab file, or '-' for stdin
	Output    string
	Seed      int64
	NoShuffle bool
	Title     string
	Start     int
	Version   bool
}

// NewFlagSet returns a FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: build a multiple-choice exam from a vocab file

One entry per line: <headword><sep><meaning>, where <sep> is a tab,
':', '-', or a run of two or more spaces. Lines starting with '#' are
skipped. Duplicate headwords keep their first meaning.

Version: %s

Usage: %s [flags] <vocab-file>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags. Defaults for seed, title
// and start come from the environment-backed config.
func ParseArgs(fs *flag.FlagSet, argv []string, defaults config.Config) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "exam.txt", "output file, '-' for stdout [exam.txt]")
	fs.StringVar(&opt.Output, "o", "exam.txt", "alias of --output")
	fs.Int64Var(&opt.Seed, "seed", defaults.Seed, "random seed for reproducible exams [42]")
	fs.BoolVar(&opt.NoShuffle, "no-shuffle", false, "keep the correct answer at option 'a' [false]")
	fs.StringVar(&opt.Title, "title", defaults.Title, "optional title line for the document")
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
	if opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	if opt.Start < 1 {
		return opt, errors.New("--start must be ≥ 1")
	}
	return opt, nil
}
