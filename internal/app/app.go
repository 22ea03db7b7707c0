// internal/app/app.go
package app

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
	"examgen/internal/cli"
	"examgen/internal/config"
	"examgen/internal/version"
	"examgen/internal/writers"
)

// Run executes the examgen pipeline: parse flags, load vocab entries
// (deduplicated by headword, first wins), pick distractors from the
// global meaning pool, assemble, render. Returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("examgen")
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

	opts, err := cli.ParseArgs(fs, argv, cfg)
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
		_, _ = fmt.Fprintf(outw, "examgen version %s\n", version.Version)
		return 0
	}

	entries, err := vocab.LoadFile(opts.Input, vocab.SplitLine, true)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	qs := exam.Assemble(rng, entries, distractor.NewPooled(entries), exam.Options{
		Shuffle: !opts.NoShuffle,
		Start:   opts.Start,
	})

	if err := writers.WriteDocument(opts.Output, outw, opts.Title, qs); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if opts.Output != "-" {
		_, _ = fmt.Fprintf(outw, "Wrote %s with %d questions.\n", opts.Output, len(qs))
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
