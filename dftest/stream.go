// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dftest

import "github.com/db47h/dataflow"

// A Stream is an upstream producer that honors backpressure: it keeps
// presenting the same datum until the stage accepts it.
//
type Stream[A any] struct {
	items []A
	pos   int
	gaps  []bool
}

// NewStream returns a Stream presenting items in order.
//
func NewStream[A any](items ...A) *Stream[A] {
	return &Stream[A]{items: items}
}

// Throttle makes the stream deassert valid on ticks where the cycling pattern p
// is false.
//
func (s *Stream[A]) Throttle(p ...bool) *Stream[A] {
	s.gaps = p
	return s
}

// Input returns the dataflow.Input function for the stream.
//
func (s *Stream[A]) Input() dataflow.Input[A] {
	return func(tick uint64) (bool, A) {
		var zero A
		if s.pos >= len(s.items) {
			return false, zero
		}
		if len(s.gaps) > 0 && !s.gaps[tick%uint64(len(s.gaps))] {
			return false, zero
		}
		return true, s.items[s.pos]
	}
}

// Observe must be called after each tick with the accepted flag of the tick's
// sample.
//
func (s *Stream[A]) Observe(accepted bool) {
	if accepted {
		s.pos++
	}
}

// Done returns true once every item has been accepted.
//
func (s *Stream[A]) Done() bool { return s.pos >= len(s.items) }

// A Collector is a downstream consumer recording delivered data.
//
type Collector[B any] struct {
	ready dataflow.Output
	got   []B
}

// NewCollector returns a collector whose ready-in follows out. A nil out is
// dataflow.AlwaysReady.
//
func NewCollector[B any](out dataflow.Output) *Collector[B] {
	if out == nil {
		out = dataflow.AlwaysReady
	}
	return &Collector[B]{ready: out}
}

// Output returns the dataflow.Output function for the collector.
//
func (c *Collector[B]) Output() dataflow.Output { return c.ready }

// Observe must be called after each tick with the delivered flag and data-out
// of the tick's sample.
//
func (c *Collector[B]) Observe(delivered bool, data B) {
	if delivered {
		c.got = append(c.got, data)
	}
}

// Got returns the delivered data in delivery order.
//
func (c *Collector[B]) Got() []B { return c.got }

// Run builds a circuit around t fed by s and drained by c, then runs it for n
// ticks. It returns the recorded samples.
//
func Run[A, B any](t dataflow.Transducer[A, B], s *Stream[A], c *Collector[B], n int) ([]dataflow.Sample[A, B], error) {
	cc, err := dataflow.NewCircuit(t, s.Input(), c.Output())
	if err != nil {
		return nil, err
	}
	samples := make([]dataflow.Sample[A, B], 0, n)
	cc.Run(n, func(smp *dataflow.Sample[A, B]) {
		s.Observe(smp.Accepted())
		c.Observe(smp.Delivered(), smp.Data)
		samples = append(samples, *smp)
	})
	return samples, nil
}
