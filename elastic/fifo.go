// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package elastic provides an elastic buffer (FIFO) stage for dataflow
// pipelines.
//
// The buffer is a bounded, order preserving queue. When empty it forwards
// data-in to data-out in the same tick (zero latency bypass). When full and
// downstream is not ready, new data is dropped.
//
// A buffer is also a register: used inside a dataflow.Loop it provides the one
// tick delay that breaks the combinational feedback cycle.
//
package elastic

import (
	"github.com/db47h/dataflow"
	"github.com/db47h/dataflow/vec"
	"github.com/pkg/errors"
)

// ErrCapacity is returned by New and NewWith for an invalid capacity.
//
var ErrCapacity = errors.New("invalid elastic buffer capacity")

// FIFO is an elastic buffer transducer. Its state is held in a one tick
// register and updated by Transition on every Commit.
//
// A FIFO must be used at exactly one place in a composition.
//
type FIFO[T any] struct {
	reg *dataflow.Register[State[T]]
}

var _ dataflow.Transducer[int, int] = (*FIFO[int])(nil)

// New returns an empty FIFO of the given capacity. Storage not holding queued
// data is set to fill.
//
func New[T any](capacity int, fill T) (*FIFO[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrCapacity, "capacity %d", capacity)
	}
	return NewWith(capacity, fill)
}

// NewWith returns a FIFO of capacity extra+len(initial) holding initial before
// the first tick. initial is given oldest first.
//
func NewWith[T any](extra int, fill T, initial ...T) (*FIFO[T], error) {
	if extra < 0 {
		return nil, errors.Wrapf(ErrCapacity, "negative extra capacity %d", extra)
	}
	n := extra + len(initial)
	v, err := vec.From(n, fill, initial...)
	if err != nil {
		return nil, errors.Wrapf(ErrCapacity, "capacity %d: %v", n, err)
	}
	return &FIFO[T]{
		reg: dataflow.NewRegister(State[T]{Count: len(initial), Contents: v}),
	}, nil
}

// Ready implements dataflow.Transducer.
//
func (f *FIFO[T]) Ready(readyIn bool) bool {
	return readyOut(f.reg.Q(), readyIn)
}

// Forward implements dataflow.Transducer.
//
func (f *FIFO[T]) Forward(validIn bool, dataIn T) (bool, T) {
	return forward(f.reg.Q(), validIn, dataIn)
}

// Commit implements dataflow.Transducer.
//
func (f *FIFO[T]) Commit(validIn, readyIn bool, dataIn T) {
	next, _ := Transition(f.reg.Q(), validIn, readyIn, dataIn)
	f.reg.D(next)
	f.reg.Clock()
}

// State returns the committed state. The returned value does not share storage
// with f.
//
func (f *FIFO[T]) State() State[T] {
	s := f.reg.Q()
	s.Contents = s.Contents.Clone()
	return s
}

// Count returns the number of queued elements.
//
func (f *FIFO[T]) Count() int { return f.reg.Q().Count }

// Cap returns the capacity of f.
//
func (f *FIFO[T]) Cap() int { return f.reg.Q().Cap() }

// Contents returns the queued elements, oldest first.
//
func (f *FIFO[T]) Contents() []T { return f.reg.Q().Elems() }
