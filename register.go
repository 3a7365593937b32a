// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

// A Register is a clocked storage element with a one-tick delay.
//
//	Function: Q(t) = D(t-1), Q(0) = initial
//
// D sets the value presented to the register during the current tick, Clock
// latches it. Q keeps returning the previously latched value until Clock is
// called.
//
// A Register is owned by exactly one stage.
//
type Register[T any] struct {
	q, d    T
	pending bool
}

// NewRegister returns a register holding initial.
//
func NewRegister[T any](initial T) *Register[T] {
	return &Register[T]{q: initial}
}

// Q returns the latched value.
//
func (r *Register[T]) Q() T { return r.q }

// D presents v to the register input. The last value presented before Clock
// wins.
//
func (r *Register[T]) D(v T) {
	r.d = v
	r.pending = true
}

// Clock latches the value presented with D. If D was not called since the last
// Clock, the register holds its value.
//
func (r *Register[T]) Clock() {
	if r.pending {
		var zero T
		r.q, r.d = r.d, zero
		r.pending = false
	}
}

type delay[A any] struct {
	reg *Register[Out[A]]
}

// Delay returns a transducer that delays valid and data by one tick. It is the
// plain pipeline register: it ignores backpressure and always asserts ready.
// Data presented while the register is full and downstream is not ready is
// overwritten. Use an elastic buffer when backpressure must be honored.
//
func Delay[A any]() Transducer[A, A] {
	return &delay[A]{NewRegister(Out[A]{})}
}

func (d *delay[A]) Ready(bool) bool { return true }

func (d *delay[A]) Forward(bool, A) (bool, A) {
	q := d.reg.Q()
	return q.Valid, q.Data
}

func (d *delay[A]) Commit(v, _ bool, a A) {
	d.reg.D(Out[A]{Valid: v, Ready: true, Data: a})
	d.reg.Clock()
}
