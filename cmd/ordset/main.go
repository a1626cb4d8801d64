// Answers queries against an ordered set from a line-oriented script.
//
// Example run:
// $ printf 'insert 3 1 4 1 5\nrank 4\nkth 0\nstats\n' | go run ./cmd/ordset --chunk-capacity 2
// 2
// 1
// 4 elements in 3 chunks (capacity 2, cutoff 1), 66.7% full
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/anacrolix/ordset"
)

var logger = log.Default.WithNames("main")

var args = struct {
	Script        string `arg:"positional" help:"query script to run, standard input if omitted"`
	ChunkCapacity int    `arg:"--chunk-capacity" help:"maximum elements per chunk, zero for the default"`
	SplitCutoff   int    `arg:"--split-cutoff" help:"where full chunks are cut, zero for half the capacity"`
	Stats         bool   `help:"print layout stats when the script ends"`
	Dump          bool   `help:"dump the final layout of both sets"`
	Check         bool   `help:"cross-check set algebra against roaring bitmaps"`
	Paranoid      bool   `help:"check every invariant after every mutation"`
}{}

func main() {
	defer envpprof.Stop()
	err := mainErr()
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	arg.MustParse(&args)
	cfg := ordset.NewDefaultConfig()
	if args.ChunkCapacity != 0 {
		cfg.ChunkCapacity = args.ChunkCapacity
	}
	if args.SplitCutoff != 0 {
		cfg.SplitCutoff = args.SplitCutoff
	}
	cfg.Paranoid = args.Paranoid
	var r io.Reader = os.Stdin
	if args.Script != "" {
		f, err := os.Open(args.Script)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		r = f
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	in := newInterpreter(cfg, w)
	in.check = args.Check
	err := in.run(r)
	if err != nil {
		return err
	}
	if args.Stats {
		err = in.printStats()
		if err != nil {
			return err
		}
	}
	if args.Dump {
		spew.Fdump(w, in.a.Stats(), in.b.Stats())
	}
	return nil
}
