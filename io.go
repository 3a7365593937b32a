// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow

// An Input drives the upstream side of a circuit. It is called once per tick
// and returns valid-in and data-in for that tick.
//
type Input[A any] func(tick uint64) (valid bool, data A)

// An Output drives the downstream side of a circuit. It is called once per
// tick and returns ready-in for that tick.
//
type Output func(tick uint64) (ready bool)

// Idle returns an Input that never asserts valid.
//
func Idle[A any]() Input[A] {
	return func(uint64) (bool, A) {
		var zero A
		return false, zero
	}
}

// Values returns an Input that presents v[tick] with valid set, then goes
// idle once v is exhausted. It does not wait for data to be accepted.
//
func Values[A any](v ...A) Input[A] {
	return func(tick uint64) (bool, A) {
		if tick < uint64(len(v)) {
			return true, v[tick]
		}
		var zero A
		return false, zero
	}
}

// AlwaysReady is an Output that accepts data on every tick.
//
func AlwaysReady(uint64) bool { return true }

// NeverReady is an Output that never accepts data.
//
func NeverReady(uint64) bool { return false }

// ReadyPattern returns an Output cycling through p. An empty pattern is
// AlwaysReady.
//
func ReadyPattern(p ...bool) Output {
	if len(p) == 0 {
		return AlwaysReady
	}
	return func(tick uint64) bool {
		return p[tick%uint64(len(p))]
	}
}
