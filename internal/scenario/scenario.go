// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package scenario loads and runs elastic buffer stimulus scenarios.
//
// A scenario file looks like:
//
//	name: drop on full
//	capacity: 2
//	fill: "-"
//	initial: [X]
//	ticks:
//	  - {valid: true, ready: false, data: A}
//	  - {valid: false, ready: true, repeat: 3}
//
package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario describes an elastic buffer and the handshake inputs presented to
// it on each tick.
//
type Scenario struct {
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"` // total capacity, including initial elements
	Fill     string   `yaml:"fill,omitempty"`
	Initial  []string `yaml:"initial,omitempty"` // oldest first
	Ticks    []Tick   `yaml:"ticks"`
}

// Tick holds the inputs for one tick, or Repeat consecutive ticks.
//
type Tick struct {
	Valid  bool   `yaml:"valid"`
	Ready  bool   `yaml:"ready"`
	Data   string `yaml:"data,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Parse decodes and validates a scenario.
//
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file.
//
func Load(name string) (*Scenario, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	s, err := Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return s, nil
}

// Validate checks the buffer parameters and tick list.
//
func (s *Scenario) Validate() error {
	if s.Capacity <= 0 {
		return errors.Errorf("scenario %q: capacity must be positive, got %d", s.Name, s.Capacity)
	}
	if len(s.Initial) > s.Capacity {
		return errors.Errorf("scenario %q: %d initial elements exceed capacity %d", s.Name, len(s.Initial), s.Capacity)
	}
	for i, t := range s.Ticks {
		if t.Repeat < 0 {
			return errors.Errorf("scenario %q: tick entry %d: negative repeat count", s.Name, i)
		}
	}
	return nil
}

// Expand returns the tick list with repeated entries unrolled.
//
func (s *Scenario) Expand() []Tick {
	var out []Tick
	for _, t := range s.Ticks {
		n := t.Repeat
		if n == 0 {
			n = 1
		}
		t.Repeat = 0
		for i := 0; i < n; i++ {
			out = append(out, t)
		}
	}
	return out
}
