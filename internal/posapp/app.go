// internal/posapp/app.go
package posapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"

	"examgen-core/distractor"
	"examgen-core/exam"
	"examgen-core/vocab"
	"examgen/internal/config"
	"examgen/internal/poscli"
	"examgen/internal/version"
	"examgen/internal/writers"
)

// Run executes the examgen-pos pipeline: POS-tagged parsing, no
// deduplication, same-category distractor preference, document on
// stdout. Returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := poscli.NewFlagSet("examgen-pos")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	opts, err := poscli.ParseArgs(fs, argv, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "examgen-pos version %s\n", version.Version)
		return 0
	}

	entries, err := vocab.LoadFile(opts.Input, vocab.ParseTagged, false)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	qs := exam.Assemble(rng, entries, distractor.NewCategorized(entries), exam.Options{
		Shuffle: true,
		Start:   opts.Start,
	})

	if err := exam.Render(outw, opts.Title, qs); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
