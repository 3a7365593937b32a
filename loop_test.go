// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow_test

import (
	"testing"

	df "github.com/db47h/dataflow"
	"github.com/db47h/dataflow/elastic"
	"github.com/pkg/errors"
)

// accumulator returns a running sum built from a Loop whose feedback path goes
// through an elastic buffer preloaded with 0.
func accumulator(t *testing.T) (df.Transducer[int, int], *elastic.FIFO[int]) {
	t.Helper()
	reg, err := elastic.NewWith(1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sum := df.Arr(func(p df.Pair[int, int]) df.Pair[int, int] {
		s := p.First + p.Second
		return df.MakePair(s, s)
	})
	return df.Loop(df.Compose(sum, df.Second[int, int, int](reg))), reg
}

func TestLoop_accumulator(t *testing.T) {
	acc, reg := accumulator(t)
	total := 0
	for i := 1; i <= 20; i++ {
		total += i
		o := df.Step(acc, true, true, i)
		if !o.Valid || !o.Ready {
			t.Fatalf("step %d: valid=%v, ready=%v", i, o.Valid, o.Ready)
		}
		if o.Data != total {
			t.Fatalf("step %d: sum = %d, expected %d", i, o.Data, total)
		}
		if reg.Count() != 1 {
			t.Fatalf("step %d: feedback buffer count = %d", i, reg.Count())
		}
	}
}

func TestLoop_full_feedback(t *testing.T) {
	reg, err := elastic.NewWith(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sum := df.Arr(func(p df.Pair[int, int]) df.Pair[int, int] {
		s := p.First + p.Second
		return df.MakePair(s, s)
	})
	acc := df.Loop(df.Compose(sum, df.Second[int, int, int](reg)))

	for i, exp := range []int{1, 3, 6, 10} {
		o := df.Step(acc, true, true, i+1)
		if !o.Valid || !o.Ready || o.Data != exp {
			t.Fatalf("step %d: got %+v, expected valid, ready, %d", i+1, o, exp)
		}
	}

	// downstream not ready: the full feedback buffer holds and the sum is lost
	o := df.Step(acc, true, false, 100)
	if o.Ready {
		t.Fatal("ready-out true with ready-in false on a full feedback buffer")
	}
	if c := reg.Contents(); len(c) != 1 || c[0] != 10 {
		t.Fatalf("feedback contents %v, expected [10]", c)
	}
	if o = df.Step(acc, true, true, 5); !o.Ready || o.Data != 15 {
		t.Fatalf("got %+v, expected ready, 15", o)
	}
}

func TestLoop_eval_is_pure(t *testing.T) {
	acc, _ := accumulator(t)
	df.Step(acc, true, true, 5)
	for i := 0; i < 3; i++ {
		if o := df.Eval(acc, true, true, 1); o.Data != 6 {
			t.Fatalf("Eval #%d = %d, expected 6", i, o.Data)
		}
	}
}

// inverter is a broken combinational stage whose valid-out is the negation of
// its valid-in.
type inverter struct{}

func (inverter) Ready(r bool) bool { return r }
func (inverter) Forward(v bool, d df.Pair[int, int]) (bool, df.Pair[int, int]) {
	return !v, d
}
func (inverter) Commit(bool, bool, df.Pair[int, int]) {}

func TestLoop_unsettled(t *testing.T) {
	l := df.Loop[int, int, int](inverter{})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || errors.Cause(err) != df.ErrUnsettled {
			t.Fatalf("expected ErrUnsettled panic, got %v", r)
		}
	}()
	df.Step(l, true, true, 0)
}
