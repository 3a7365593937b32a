// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

// A Transducer is a pipeline stage speaking the valid/ready handshake.
//
// Ready and Forward are the combinational part of the stage. They must not
// change the stage's state and may be called any number of times per tick.
// Commit latches registered state at the end of a tick, given the same inputs
// that were presented to Ready and Forward during that tick. It is called
// exactly once per tick.
//
// Purely combinational stages implement Commit as a no-op.
//
type Transducer[A, B any] interface {
	// Ready returns ready-out. It depends only on readyIn and registered state.
	Ready(readyIn bool) (readyOut bool)
	// Forward returns valid-out and data-out.
	Forward(validIn bool, dataIn A) (validOut bool, dataOut B)
	// Commit updates registered state for the next tick.
	Commit(validIn, readyIn bool, dataIn A)
}

// Out holds the three outputs of a transducer for one tick.
//
type Out[B any] struct {
	Valid bool
	Ready bool
	Data  B
}

// Eval returns the outputs of t for the given inputs without committing
// anything.
//
func Eval[A, B any](t Transducer[A, B], validIn, readyIn bool, dataIn A) Out[B] {
	r := t.Ready(readyIn)
	v, d := t.Forward(validIn, dataIn)
	return Out[B]{Valid: v, Ready: r, Data: d}
}

// Step evaluates t for one tick and commits its state.
//
func Step[A, B any](t Transducer[A, B], validIn, readyIn bool, dataIn A) Out[B] {
	o := Eval(t, validIn, readyIn, dataIn)
	t.Commit(validIn, readyIn, dataIn)
	return o
}

type identity[A any] struct{}

func (identity[A]) Ready(r bool) bool             { return r }
func (identity[A]) Forward(v bool, d A) (bool, A) { return v, d }
func (identity[A]) Commit(bool, bool, A)          {}

// Identity returns a transducer that passes valid, ready and data through
// unchanged. It is the identity element for Compose.
//
func Identity[A any]() Transducer[A, A] { return identity[A]{} }

type arr[A, B any] struct {
	f func(A) B
}

func (a arr[A, B]) Ready(r bool) bool             { return r }
func (a arr[A, B]) Forward(v bool, d A) (bool, B) { return v, a.f(d) }
func (a arr[A, B]) Commit(bool, bool, A)          {}

// Arr lifts a pure function into a combinational transducer. Valid and ready
// pass through unchanged, data-out is f(data-in).
//
// f is called on every tick, regardless of valid-in.
//
func Arr[A, B any](f func(A) B) Transducer[A, B] { return arr[A, B]{f} }

type compose[A, B, C any] struct {
	f Transducer[A, B]
	g Transducer[B, C]
}

// Compose chains f and g: f's valid/data outputs feed g, g's ready output
// feeds f.
//
//	r2 = g.Ready(readyIn)
//	r1 = f.Ready(r2)
//	v1, d1 = f.Forward(validIn, dataIn)
//	v2, d2 = g.Forward(v1, d1)
//
// The composite outputs are (v2, r1, d2).
//
func Compose[A, B, C any](f Transducer[A, B], g Transducer[B, C]) Transducer[A, C] {
	return &compose[A, B, C]{f, g}
}

func (c *compose[A, B, C]) Ready(r bool) bool {
	return c.f.Ready(c.g.Ready(r))
}

func (c *compose[A, B, C]) Forward(v bool, d A) (bool, C) {
	v1, d1 := c.f.Forward(v, d)
	return c.g.Forward(v1, d1)
}

func (c *compose[A, B, C]) Commit(v, r bool, d A) {
	r2 := c.g.Ready(r)
	v1, d1 := c.f.Forward(v, d)
	c.f.Commit(v, r2, d)
	c.g.Commit(v1, r, d1)
}

// Pipeline chains stages of the same data type left to right. It returns
// Identity if stages is empty.
//
func Pipeline[A any](stages ...Transducer[A, A]) Transducer[A, A] {
	if len(stages) == 0 {
		return Identity[A]()
	}
	t := stages[0]
	for _, s := range stages[1:] {
		t = Compose(t, s)
	}
	return t
}

type first[A, B, C any] struct {
	t Transducer[A, B]
}

// First routes the first element of a pair through t and passes the second
// element through unchanged. Valid and ready follow t.
//
func First[A, B, C any](t Transducer[A, B]) Transducer[Pair[A, C], Pair[B, C]] {
	return first[A, B, C]{t}
}

func (f first[A, B, C]) Ready(r bool) bool { return f.t.Ready(r) }

func (f first[A, B, C]) Forward(v bool, d Pair[A, C]) (bool, Pair[B, C]) {
	vo, b := f.t.Forward(v, d.First)
	return vo, Pair[B, C]{b, d.Second}
}

func (f first[A, B, C]) Commit(v, r bool, d Pair[A, C]) { f.t.Commit(v, r, d.First) }

type second[A, B, C any] struct {
	t Transducer[A, B]
}

// Second routes the second element of a pair through t and passes the first
// element through unchanged. Valid and ready follow t.
//
func Second[A, B, C any](t Transducer[A, B]) Transducer[Pair[C, A], Pair[C, B]] {
	return second[A, B, C]{t}
}

func (s second[A, B, C]) Ready(r bool) bool { return s.t.Ready(r) }

func (s second[A, B, C]) Forward(v bool, d Pair[C, A]) (bool, Pair[C, B]) {
	vo, b := s.t.Forward(v, d.Second)
	return vo, Pair[C, B]{d.First, b}
}

func (s second[A, B, C]) Commit(v, r bool, d Pair[C, A]) { s.t.Commit(v, r, d.Second) }

type par[A, B, C, D any] struct {
	f Transducer[A, B]
	g Transducer[C, D]
}

// Par runs f on the first element of a pair and g on the second, both under
// the same valid-in and ready-in. Valid-out is the AND of both valid outputs,
// ready-out the AND of both ready outputs.
//
// Each side commits on its own ready-out: one side may admit its half of the
// input on a tick where the other side, and therefore the composite, is not
// ready. An upstream that presents the same pair again on the next tick gets
// that half admitted twice.
//
func Par[A, B, C, D any](f Transducer[A, B], g Transducer[C, D]) Transducer[Pair[A, C], Pair[B, D]] {
	return &par[A, B, C, D]{f, g}
}

func (p *par[A, B, C, D]) Ready(r bool) bool {
	r1, r2 := p.f.Ready(r), p.g.Ready(r)
	return r1 && r2
}

func (p *par[A, B, C, D]) Forward(v bool, d Pair[A, C]) (bool, Pair[B, D]) {
	v1, b := p.f.Forward(v, d.First)
	v2, dd := p.g.Forward(v, d.Second)
	return v1 && v2, Pair[B, D]{b, dd}
}

func (p *par[A, B, C, D]) Commit(v, r bool, d Pair[A, C]) {
	p.f.Commit(v, r, d.First)
	p.g.Commit(v, r, d.Second)
}

type fanout[A, B, C any] struct {
	f Transducer[A, B]
	g Transducer[A, C]
}

// Fanout feeds the same input to f and g and pairs their outputs. Valid-out
// and ready-out are the AND of the respective outputs of f and g.
//
// As with Par, f or g may admit the input while the composite ready-out is
// false, and admit it again if upstream presents it again.
//
func Fanout[A, B, C any](f Transducer[A, B], g Transducer[A, C]) Transducer[A, Pair[B, C]] {
	return &fanout[A, B, C]{f, g}
}

func (o *fanout[A, B, C]) Ready(r bool) bool {
	r1, r2 := o.f.Ready(r), o.g.Ready(r)
	return r1 && r2
}

func (o *fanout[A, B, C]) Forward(v bool, d A) (bool, Pair[B, C]) {
	v1, b := o.f.Forward(v, d)
	v2, c := o.g.Forward(v, d)
	return v1 && v2, Pair[B, C]{b, c}
}

func (o *fanout[A, B, C]) Commit(v, r bool, d A) {
	o.f.Commit(v, r, d)
	o.g.Commit(v, r, d)
}
