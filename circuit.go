// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrNilTransducer is returned when building a circuit without a transducer.
//
var ErrNilTransducer = errors.New("nil transducer")

// A Sample records the six handshake wires of a circuit's top level stage for
// one tick.
//
type Sample[A, B any] struct {
	Tick    uint64
	ValidIn bool
	ReadyIn bool
	DataIn  A
	Out[B]
}

// Accepted returns true if data-in was transferred into the stage during the
// sampled tick (valid-in and ready-out both asserted).
//
func (s *Sample[A, B]) Accepted() bool { return s.ValidIn && s.Ready }

// Delivered returns true if data-out was transferred downstream during the
// sampled tick (valid-out and ready-in both asserted).
//
func (s *Sample[A, B]) Delivered() bool { return s.Valid && s.ReadyIn }

// An Option configures a Circuit.
//
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger used to trace circuit ticks. Ticks are logged at
// trace level.
//
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Circuit is a runnable simulation of a single top level transducer wired to
// an upstream Input and a downstream Output.
//
// Evaluation is single-threaded: each Step samples the input functions, runs
// the combinational part of the transducer once and commits registered state.
//
type Circuit[A, B any] struct {
	t    Transducer[A, B]
	in   Input[A]
	out  Output
	tick uint64
	log  zerolog.Logger
}

// NewCircuit builds a new circuit around t. A nil in is treated as Idle, a nil
// out as AlwaysReady.
//
func NewCircuit[A, B any](t Transducer[A, B], in Input[A], out Output, opts ...Option) (*Circuit[A, B], error) {
	if t == nil {
		return nil, errors.Wrap(ErrNilTransducer, "new circuit")
	}
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if in == nil {
		in = Idle[A]()
	}
	if out == nil {
		out = AlwaysReady
	}
	return &Circuit[A, B]{
		t:   t,
		in:  in,
		out: out,
		log: o.log,
	}, nil
}

// Step advances the simulation by one tick and returns the sampled wires.
//
func (c *Circuit[A, B]) Step() Sample[A, B] {
	s := Sample[A, B]{Tick: c.tick}
	s.ValidIn, s.DataIn = c.in(c.tick)
	s.ReadyIn = c.out(c.tick)
	s.Out = Step(c.t, s.ValidIn, s.ReadyIn, s.DataIn)
	c.log.Trace().
		Uint64("tick", s.Tick).
		Bool("valid_in", s.ValidIn).
		Bool("ready_in", s.ReadyIn).
		Interface("data_in", s.DataIn).
		Bool("valid_out", s.Valid).
		Bool("ready_out", s.Ready).
		Interface("data_out", s.Data).
		Msg("tick")
	c.tick++
	return s
}

// Run runs the simulation for n ticks. If probe is not nil, it is called with
// the sample of every tick.
//
func (c *Circuit[A, B]) Run(n int, probe func(*Sample[A, B])) {
	for i := 0; i < n; i++ {
		s := c.Step()
		if probe != nil {
			probe(&s)
		}
	}
}

// Steps returns the value of the tick counter.
//
func (c *Circuit[A, B]) Steps() uint64 {
	return c.tick
}
