// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

import "fmt"

// A Pair bundles two values carried on the same data wires.
//
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{a, b}.
//
func MakePair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{a, b} }

// Split returns both elements of p.
//
func (p Pair[A, B]) Split() (A, B) { return p.First, p.Second }

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// Swap exchanges the elements of a pair.
//
func Swap[A, B any](p Pair[A, B]) Pair[B, A] { return Pair[B, A]{p.Second, p.First} }

// Join returns a combinational transducer that recombines a pair produced by
// two separate functions of the same input. It is Fanout for pure functions.
//
func Join[A, B, C any](f func(A) B, g func(A) C) Transducer[A, Pair[B, C]] {
	return Arr(func(a A) Pair[B, C] { return Pair[B, C]{f(a), g(a)} })
}
