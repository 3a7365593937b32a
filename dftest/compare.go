// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package dftest provides utility functions for testing dataflow stages.
//
package dftest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/dataflow"
)

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// Compare drives t1 and t2 with the same random handshake inputs for the given
// number of ticks and fails the test on the first tick where their outputs
// differ. Both stages must be distinct instances: they are committed on every
// tick.
//
// gen returns a random data-in value. If gen is nil, the zero value of A is
// used.
//
func Compare[A any, B comparable](t testing.TB, ticks int, gen func(*rand.Rand) A, t1, t2 dataflow.Transducer[A, B]) {
	t.Helper()

	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	for tick := 0; tick < ticks; tick++ {
		var d A
		if gen != nil {
			d = gen(r)
		}
		v, rdy := randBool(r), randBool(r)
		o1 := dataflow.Step(t1, v, rdy, d)
		o2 := dataflow.Step(t2, v, rdy, d)
		if o1 != o2 {
			t.Fatalf("seed %d, tick %d: valid-in=%v, ready-in=%v, data-in=%v\nExpected %+v\nGot      %+v",
				seed, tick, v, rdy, d, o1, o2)
		}
	}
}
