// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package dataflow provides a synchronous valid/ready handshake algebra for
composing hardware-style pipeline stages under backpressure, and a naive
single-threaded simulator to run them.

A Transducer is a stage with three inputs (valid-in, ready-in, data-in) and
three outputs (valid-out, ready-out, data-out), all sampled once per clock
tick. Data and valid flow left to right, ready flows right to left. Stages are
combined with Compose, Arr, First, Second, Par, Fanout and Loop into larger
stages that obey the same protocol.

Ready-out may only depend on ready-in and registered state. This is enforced
by the Transducer interface itself: Ready never sees valid-in or data-in. It is
what makes the same-tick dependency between two chained stages (the left
stage's ready-in is the right stage's ready-out, while the right stage's
valid-in is the left stage's valid-out) always resolvable.

Evaluation is lockstep: a Circuit calls Ready and Forward on the top level
stage, then Commit, once per tick. Registered state (see Register) is the only
one-tick delay in the system and the only thing that makes feedback well
founded. Two misuses are not detected and result in undefined behavior:

	- a Loop around a stage whose feedback path has no register in it,
	- the same stateful stage instance used at two places in a composition.

Par and Fanout do not synchronize admission between their two sides: when
only one side is ready, that side admits data while the composite reports
ready-out false. Retrying the same data then duplicates it on that side.

The elastic package provides the elastic buffer (FIFO) stage.
*/
package dataflow
