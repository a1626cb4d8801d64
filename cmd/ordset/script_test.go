package main

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/anacrolix/ordset"
)

func runScript(t *testing.T, chunkCapacity int, check bool, script string) (string, error) {
	t.Helper()
	cfg := ordset.NewDefaultConfig()
	cfg.ChunkCapacity = chunkCapacity
	cfg.Paranoid = true
	var out strings.Builder
	in := newInterpreter(cfg, &out)
	in.check = check
	err := in.run(strings.NewReader(script))
	return out.String(), err
}

func TestScriptQueries(t *testing.T) {
	out, err := runScript(t, 2, false, `
# Comments and blank lines are skipped.
insert 3 1 4 1 5 9 2 6
len
rank 4
kth 0
kth 100
contains 9
contains 7
lower 7
upper 9
range 2 5
first
last
pop 1
popfirst
poplast
remove 4 5
len
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, strings.Join([]string{
		"7",
		"3",
		"1",
		"none",
		"true",
		"false",
		"9",
		"none",
		"2 3 4 5",
		"1",
		"9",
		"2",
		"1",
		"9",
		"2",
		"",
	}, "\n")))
}

func TestScriptStats(t *testing.T) {
	out, err := runScript(t, 4, false, "insert 1 2 3\nstats\ninsert 4 5\nstats\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, strings.Join([]string{
		"3 elements in 1 chunks (capacity 4, cutoff 2), 75.0% full",
		"5 elements in 2 chunks (capacity 4, cutoff 2), 62.5% full",
		"",
	}, "\n")))
}

func TestScriptSetAlgebra(t *testing.T) {
	out, err := runScript(t, 3, true, `
insert 1 3 5 7
b-insert 3 4 5 6
union
intersection
difference
symdiff
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "1 3 4 5 6 7\n3 5\n1 7\n1 4 6 7\n"))
}

func TestScriptCheckRejectsNegatives(t *testing.T) {
	_, err := runScript(t, 4, true, "insert -1\nunion\n")
	qt.Assert(t, qt.ErrorMatches(err, `line 2: converting A: -1 doesn't fit in a bitmap`))
	// Without the cross-check, negatives are fine.
	out, err := runScript(t, 4, false, "insert -1\nunion\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "-1\n"))
}

func TestScriptErrors(t *testing.T) {
	for _, tc := range []struct {
		script string
		err    string
	}{
		{"frobnicate 1", `line 1: unknown command "frobnicate"`},
		{"len\ninsert", `line 2: insert needs at least one operand`},
		{"rank 1 2", `line 1: rank takes 1 operands, got 2`},
		{"insert x", `line 1: parsing operand of insert: .*invalid syntax`},
	} {
		_, err := runScript(t, 4, false, tc.script)
		qt.Check(t, qt.ErrorMatches(err, tc.err), qt.Commentf("%q", tc.script))
	}
}
