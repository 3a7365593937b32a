// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

import "github.com/pkg/errors"

// ErrUnsettled is the panic value raised when the feedback signals of a Loop
// keep changing within a single tick.
//
var ErrUnsettled = errors.New("feedback loop did not settle")

// maxSettle bounds the number of feedback passes per tick. Boolean feedback
// through monotone stages settles in two passes.
const maxSettle = 8

type loop[A, B, D any] struct {
	t Transducer[Pair[A, D], Pair[B, D]]
}

// Loop closes a feedback path around t. The second element of t's data output
// is fed back as the second element of its data input within the same tick.
// t's own valid-out and ready-out are fed back too:
//
//	inner valid-in = validIn && inner valid-out
//	inner ready-in = readyIn && inner ready-out
//
// The feedback values are resolved by iterating t until they stop changing.
// Valid starts at false (least fixed point) and the fed back datum at the zero
// value of D. Ready starts at true (greatest fixed point): a full feedback
// buffer whose ready-out follows its ready-in must not hold the loop stalled
// when downstream is ready.
//
// The feedback path must go through at least one registered stage (an elastic
// buffer for instance) so that the fed back datum does not depend on itself
// within a tick. This is not checked. A Loop around a purely combinational
// stage whose feedback oscillates panics with ErrUnsettled, other malformed
// loops silently produce undefined results.
//
func Loop[A, B, D any](t Transducer[Pair[A, D], Pair[B, D]]) Transducer[A, B] {
	return &loop[A, B, D]{t}
}

func (l *loop[A, B, D]) settleReady(readyIn bool) (inner, out bool) {
	ro := true
	for i := 0; i < maxSettle; i++ {
		in := readyIn && ro
		r := l.t.Ready(in)
		if r == ro {
			return in, r
		}
		ro = r
	}
	panic(errors.Wrap(ErrUnsettled, "ready"))
}

// settleForward returns the inner inputs and outputs at the fixed point.
func (l *loop[A, B, D]) settleForward(validIn bool, a A) (bool, Pair[A, D], bool, Pair[B, D]) {
	var (
		vo bool
		fb D
	)
	for i := 0; i < maxSettle; i++ {
		vi, in := validIn && vo, Pair[A, D]{a, fb}
		v, out := l.t.Forward(vi, in)
		if i > 0 && v == vo {
			return vi, in, v, out
		}
		vo, fb = v, out.Second
	}
	panic(errors.Wrap(ErrUnsettled, "valid"))
}

func (l *loop[A, B, D]) Ready(r bool) bool {
	_, ro := l.settleReady(r)
	return ro
}

func (l *loop[A, B, D]) Forward(v bool, a A) (bool, B) {
	_, _, vo, out := l.settleForward(v, a)
	return vo, out.First
}

func (l *loop[A, B, D]) Commit(v, r bool, a A) {
	ri, _ := l.settleReady(r)
	vi, in, _, _ := l.settleForward(v, a)
	l.t.Commit(vi, ri, in)
}
