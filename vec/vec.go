// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vec provides a fixed capacity vector used as a shift register.
//
package vec

import "github.com/pkg/errors"

// ErrCapacity is returned for an invalid vector capacity.
//
var ErrCapacity = errors.New("invalid capacity")

// A Vec is a fixed capacity sequence of values, always full. Index 0 is the
// newest element, index Cap()-1 the oldest. Shifting a value in at the newest
// end drops the oldest one.
//
// Storage is a ring indexed from the newest slot, so ShiftIn is O(1).
//
// The zero Vec has capacity 0 and is not usable.
//
type Vec[T any] struct {
	buf   []T
	start int // slot of index 0
}

// New returns a vector of capacity n where every element is fill.
//
func New[T any](n int, fill T) (Vec[T], error) {
	if n <= 0 {
		return Vec[T]{}, errors.Wrapf(ErrCapacity, "vec capacity %d", n)
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = fill
	}
	return Vec[T]{buf: buf}, nil
}

// From returns a vector of capacity n holding elems, given in oldest to newest
// order, at its newest end. Slots not covered by elems are set to fill.
//
//	v, _ := From(4, 0, 1, 2) // At(0) = 2, At(1) = 1, At(2) = 0, At(3) = 0
//
func From[T any](n int, fill T, elems ...T) (Vec[T], error) {
	if len(elems) > n {
		return Vec[T]{}, errors.Wrapf(ErrCapacity, "%d elements do not fit in vec capacity %d", len(elems), n)
	}
	v, err := New(n, fill)
	if err != nil {
		return v, err
	}
	for i, e := range elems {
		v.buf[len(elems)-1-i] = e
	}
	return v, nil
}

// Cap returns the capacity of v.
//
func (v Vec[T]) Cap() int { return len(v.buf) }

func (v Vec[T]) slot(i int) int {
	if i < 0 || i >= len(v.buf) {
		panic(errors.Errorf("vec index %d out of range [0:%d]", i, len(v.buf)))
	}
	return (v.start + i) % len(v.buf)
}

// At returns the element at index i. 0 is the newest element.
//
func (v Vec[T]) At(i int) T { return v.buf[v.slot(i)] }

// Newest returns At(0).
//
func (v Vec[T]) Newest() T { return v.At(0) }

// Oldest returns the oldest of the count newest elements, that is At(count-1).
//
func (v Vec[T]) Oldest(count int) T { return v.At(count - 1) }

// Clone returns a copy of v that does not share storage with v.
//
func (v Vec[T]) Clone() Vec[T] {
	buf := make([]T, len(v.buf))
	copy(buf, v.buf)
	return Vec[T]{buf: buf, start: v.start}
}

// ShiftIn inserts x at index 0 and shifts every other element by one index.
// The element at index Cap()-1 is dropped and returned.
//
// ShiftIn modifies v's storage in place, including that of copies of v. Use
// Clone first to keep the original.
//
func (v *Vec[T]) ShiftIn(x T) (dropped T) {
	n := len(v.buf)
	if n == 0 {
		panic(errors.New("vec: shift into zero capacity vec"))
	}
	v.start = (v.start + n - 1) % n
	dropped, v.buf[v.start] = v.buf[v.start], x
	return dropped
}

// Slice returns the count newest elements in oldest to newest order.
//
func (v Vec[T]) Slice(count int) []T {
	out := make([]T, count)
	for i := range out {
		out[i] = v.At(count - 1 - i)
	}
	return out
}
