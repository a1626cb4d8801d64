package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/anacrolix/ordset"
)

// Runs scripts against two sets. Most commands act on A, B is only there to be the other operand
// of set algebra.
type interpreter struct {
	a, b  *ordset.Set[int64]
	w     io.Writer
	check bool
}

func newInterpreter(cfg *ordset.Config, w io.Writer) *interpreter {
	return &interpreter{
		a: ordset.New[int64](cfg),
		b: ordset.New[int64](cfg),
		w: w,
	}
}

type command struct {
	// Exact number of operands, or -1 for one or more.
	arity int
	run   func(in *interpreter, operands []int64) error
}

var commands = map[string]command{
	"insert": {-1, func(in *interpreter, ops []int64) error {
		for _, v := range ops {
			in.a.Insert(v)
		}
		return nil
	}},
	"b-insert": {-1, func(in *interpreter, ops []int64) error {
		for _, v := range ops {
			in.b.Insert(v)
		}
		return nil
	}},
	"remove": {-1, func(in *interpreter, ops []int64) error {
		for _, v := range ops {
			in.a.Remove(v)
		}
		return nil
	}},
	"contains": {1, func(in *interpreter, ops []int64) error {
		return in.println(in.a.Contains(ops[0]))
	}},
	"rank": {1, func(in *interpreter, ops []int64) error {
		return in.println(in.a.Rank(ops[0]))
	}},
	"kth": {1, func(in *interpreter, ops []int64) error {
		return in.printOption(in.a.GetByRank(int(ops[0])))
	}},
	"pop": {1, func(in *interpreter, ops []int64) error {
		return in.printOption(in.a.PopByRank(int(ops[0])))
	}},
	"first": {0, func(in *interpreter, _ []int64) error {
		return in.printOption(in.a.First())
	}},
	"last": {0, func(in *interpreter, _ []int64) error {
		return in.printOption(in.a.Last())
	}},
	"popfirst": {0, func(in *interpreter, _ []int64) error {
		return in.printOption(in.a.PopFirst())
	}},
	"poplast": {0, func(in *interpreter, _ []int64) error {
		return in.printOption(in.a.PopLast())
	}},
	"lower": {1, func(in *interpreter, ops []int64) error {
		return in.printOption(in.a.LowerBound(ops[0]))
	}},
	"upper": {1, func(in *interpreter, ops []int64) error {
		return in.printOption(in.a.UpperBound(ops[0]))
	}},
	"range": {2, func(in *interpreter, ops []int64) error {
		it := in.a.Range(ordset.Included(ops[0]), ordset.Included(ops[1]))
		return in.printValues(slices.Collect(it.Seq()))
	}},
	"len": {0, func(in *interpreter, _ []int64) error {
		return in.println(in.a.Len())
	}},
	"clear": {0, func(in *interpreter, _ []int64) error {
		in.a.Clear()
		in.b.Clear()
		return nil
	}},
	"stats": {0, func(in *interpreter, _ []int64) error {
		return in.printStats()
	}},
	"union": {0, func(in *interpreter, _ []int64) error {
		return in.setOp(in.a.Union(in.b).Seq(), roaring.Or)
	}},
	"intersection": {0, func(in *interpreter, _ []int64) error {
		return in.setOp(in.a.Intersection(in.b).Seq(), roaring.And)
	}},
	"difference": {0, func(in *interpreter, _ []int64) error {
		return in.setOp(in.a.Difference(in.b).Seq(), roaring.AndNot)
	}},
	"symdiff": {0, func(in *interpreter, _ []int64) error {
		return in.setOp(in.a.SymmetricDifference(in.b).Seq(), roaring.Xor)
	}},
}

// Executes each line of the script in turn. Blank lines and lines starting with # are skipped.
func (in *interpreter) run(r io.Reader) error {
	s := bufio.NewScanner(r)
	lineNum := 0
	for s.Scan() {
		lineNum++
		err := in.exec(s.Text())
		if err != nil {
			return errors.Wrapf(err, "line %v", lineNum)
		}
	}
	return errors.Wrap(s.Err(), "reading script")
}

func (in *interpreter) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name := fields[0]
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}
	operands := make([]int64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseInt(f, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing operand of %v", name)
		}
		operands = append(operands, v)
	}
	switch {
	case cmd.arity < 0 && len(operands) == 0:
		return errors.Errorf("%v needs at least one operand", name)
	case cmd.arity >= 0 && len(operands) != cmd.arity:
		return errors.Errorf("%v takes %v operands, got %v", name, cmd.arity, len(operands))
	}
	return cmd.run(in, operands)
}

func (in *interpreter) println(a any) error {
	_, err := fmt.Fprintln(in.w, a)
	return err
}

func (in *interpreter) printOption(v g.Option[int64]) error {
	if !v.Ok {
		return in.println("none")
	}
	return in.println(v.Value)
}

func (in *interpreter) printValues(vs []int64) error {
	strs := make([]string, 0, len(vs))
	for _, v := range vs {
		strs = append(strs, strconv.FormatInt(v, 10))
	}
	return in.println(strings.Join(strs, " "))
}

func (in *interpreter) printStats() error {
	stats := in.a.Stats()
	fill := 100 * float64(stats.Len) / float64(len(stats.ChunkLens)*stats.ChunkCapacity)
	_, err := fmt.Fprintf(
		in.w,
		"%s elements in %s chunks (capacity %s, cutoff %s), %.1f%% full\n",
		humanize.Comma(int64(stats.Len)),
		humanize.Comma(int64(len(stats.ChunkLens))),
		humanize.Comma(int64(stats.ChunkCapacity)),
		humanize.Comma(int64(stats.SplitCutoff)),
		fill,
	)
	return err
}

// Prints the result of a set operation on A and B, after optionally checking it against the same
// operation on roaring bitmaps.
func (in *interpreter) setOp(result iter.Seq[int64], op func(x1, x2 *roaring.Bitmap) *roaring.Bitmap) error {
	got := slices.Collect(result)
	if in.check {
		err := in.checkSetOp(got, op)
		if err != nil {
			return err
		}
	}
	return in.printValues(got)
}

func (in *interpreter) checkSetOp(got []int64, op func(x1, x2 *roaring.Bitmap) *roaring.Bitmap) error {
	a, err := toBitmap(in.a)
	if err != nil {
		return errors.Wrap(err, "converting A")
	}
	b, err := toBitmap(in.b)
	if err != nil {
		return errors.Wrap(err, "converting B")
	}
	want := op(a, b).ToArray()
	if len(want) != len(got) {
		return errors.Errorf("got %v elements, roaring has %v", len(got), len(want))
	}
	for i := range want {
		if int64(want[i]) != got[i] {
			return errors.Errorf("element %v is %v, roaring has %v", i, got[i], want[i])
		}
	}
	logger.Levelf(log.Debug, "set operation on %v elements agrees with roaring", len(got))
	return nil
}

func toBitmap(s *ordset.Set[int64]) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for v := range s.All() {
		if v < 0 || v > math.MaxUint32 {
			return nil, errors.Errorf("%v doesn't fit in a bitmap", v)
		}
		bm.Add(uint32(v))
	}
	return bm, nil
}
