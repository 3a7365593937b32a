// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dftest_test

import (
	"math/rand"
	"testing"

	df "github.com/db47h/dataflow"
	"github.com/db47h/dataflow/dftest"
)

func TestCompare(t *testing.T) {
	gen := func(r *rand.Rand) int { return r.Int() }
	dftest.Compare(t, 500, gen, df.Identity[int](), df.Arr(func(x int) int { return x }))
	dftest.Compare(t, 500, nil, df.Delay[int](), df.Compose(df.Identity[int](), df.Delay[int]()))
}

func TestStream(t *testing.T) {
	s := dftest.NewStream(1, 2).Throttle(false, true)
	in := s.Input()
	if v, _ := in(0); v {
		t.Fatal("throttled tick must not be valid")
	}
	if v, d := in(1); !v || d != 1 {
		t.Fatalf("in(1) = %v, %d", v, d)
	}
	s.Observe(false)
	if _, d := in(3); d != 1 {
		t.Fatalf("not accepted, expected 1 again, got %d", d)
	}
	s.Observe(true)
	s.Observe(true)
	if !s.Done() {
		t.Fatal("stream not done")
	}
	if v, _ := in(5); v {
		t.Fatal("exhausted stream must not be valid")
	}
}

func TestRun(t *testing.T) {
	s := dftest.NewStream("a", "b", "c")
	c := dftest.NewCollector[string](nil)
	samples, err := dftest.Run(df.Identity[string](), s, c, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 5 {
		t.Fatalf("got %d samples", len(samples))
	}
	got := c.Got()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}
