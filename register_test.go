// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	df "github.com/db47h/dataflow"
)

func TestRegister(t *testing.T) {
	r := df.NewRegister(7)
	if r.Q() != 7 {
		t.Fatalf("Q() = %d, expected 7", r.Q())
	}
	r.D(1)
	r.D(2)
	if r.Q() != 7 {
		t.Fatalf("Q() = %d before Clock, expected 7", r.Q())
	}
	r.Clock()
	if r.Q() != 2 {
		t.Fatalf("Q() = %d after Clock, expected 2", r.Q())
	}
	r.Clock()
	if r.Q() != 2 {
		t.Fatalf("Q() = %d, register must hold its value", r.Q())
	}
}

func TestDelay(t *testing.T) {
	d := df.Delay[int]()
	var prev df.Out[int]
	f := func(v bool, x int) bool {
		o := df.Step(d, v, rand.Intn(2) == 0, x)
		ok := o.Ready && o.Valid == prev.Valid && o.Data == prev.Data
		prev = df.Out[int]{Valid: v, Ready: true, Data: x}
		return ok
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
