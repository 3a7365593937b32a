// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package elastic

import (
	"github.com/db47h/dataflow"
	"github.com/db47h/dataflow/vec"
)

// State is the registered state of an elastic buffer: the number of queued
// elements and their storage. Contents.At(0) is the newest queued element,
// Contents.At(Count-1) the oldest. Elements at indices Count and above are
// stale.
//
// The zero State has capacity 0 and is not usable. Build the contents with
// vec.New or vec.From.
//
type State[T any] struct {
	Count    int
	Contents vec.Vec[T]
}

// Cap returns the buffer capacity.
//
func (s State[T]) Cap() int { return s.Contents.Cap() }

// Empty returns true if no element is queued.
//
func (s State[T]) Empty() bool { return s.Count == 0 }

// Full returns true if Count == Cap().
//
func (s State[T]) Full() bool { return s.Count == s.Contents.Cap() }

// Elems returns the queued elements, oldest first.
//
func (s State[T]) Elems() []T { return s.Contents.Slice(s.Count) }

func readyOut[T any](s State[T], readyIn bool) bool {
	return !s.Full() || readyIn
}

func forward[T any](s State[T], validIn bool, dataIn T) (bool, T) {
	if s.Empty() {
		// bypass
		return validIn, dataIn
	}
	return true, s.Contents.Oldest(s.Count)
}

// Transition is the per-tick transition function of an elastic buffer of
// capacity s.Cap(). It returns the state for the next tick and the outputs for
// the current tick. s is not modified.
//
//	valid-out = !empty || valid-in
//	ready-out = !full  || ready-in
//	data-out  = data-in if empty, oldest element otherwise
//
// data-in is admitted as the newest element iff ready-out && valid-in. Each
// admission shifts the storage by one, so that an admission happening while
// the oldest element is delivered (valid-in && ready-in && !empty) replaces it
// and leaves Count unchanged, even at full capacity. When the buffer is full
// and ready-in is false, data-in is dropped.
//
func Transition[T any](s State[T], validIn, readyIn bool, dataIn T) (State[T], dataflow.Out[T]) {
	var o dataflow.Out[T]
	o.Ready = readyOut(s, readyIn)
	o.Valid, o.Data = forward(s, validIn, dataIn)

	next := s
	if o.Ready && validIn {
		next.Contents = s.Contents.Clone()
		next.Contents.ShiftIn(dataIn)
	}
	switch {
	case validIn && !s.Full() && !readyIn:
		next.Count++
	case !validIn && !s.Empty() && readyIn:
		next.Count = max(next.Count-1, 0)
	}
	return next, o
}

// An Event classifies what an elastic buffer does during a tick.
//
type Event int

// Events. See Classify.
//
const (
	Idle     Event = iota // nothing moves, or queued data waits for ready-in
	Bypass                // empty buffer, data-in delivered in the same tick
	Enqueue               // data-in admitted, count grows
	Dequeue               // oldest element delivered, count shrinks
	Transfer              // oldest element delivered and data-in admitted
	Drop                  // data-in discarded on full buffer
)

var eventNames = [...]string{
	Idle:     "IDLE",
	Bypass:   "BYPASS",
	Enqueue:  "ENQ",
	Dequeue:  "DEQ",
	Transfer: "XFER",
	Drop:     "DROP",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "Event(?)"
	}
	return eventNames[e]
}

// Classify returns the Event occurring for state s and the given handshake
// inputs.
//
func Classify[T any](s State[T], validIn, readyIn bool) Event {
	switch {
	case validIn && readyIn && s.Empty():
		return Bypass
	case validIn && readyIn:
		return Transfer
	case validIn && s.Full():
		return Drop
	case validIn:
		return Enqueue
	case readyIn && !s.Empty():
		return Dequeue
	}
	return Idle
}
