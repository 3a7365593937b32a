// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package scenario

import (
	"github.com/db47h/dataflow"
	"github.com/db47h/dataflow/elastic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// A Record is the trace of one tick.
//
type Record struct {
	dataflow.Sample[string, string]
	Event    elastic.Event
	Count    int      // occupancy after the tick
	Contents []string // queued elements after the tick, oldest first
}

// Run builds the scenario's buffer and runs it for every tick of the scenario.
//
func (s *Scenario) Run(log zerolog.Logger) ([]Record, error) {
	fifo, err := elastic.NewWith(s.Capacity-len(s.Initial), s.Fill, s.Initial...)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", s.Name)
	}
	ticks := s.Expand()

	// the input function is sampled before the tick is committed, which is
	// where the pre-tick state is captured.
	var ev elastic.Event
	in := func(tick uint64) (bool, string) {
		t := ticks[tick]
		ev = elastic.Classify(fifo.State(), t.Valid, t.Ready)
		return t.Valid, t.Data
	}
	out := func(tick uint64) bool { return ticks[tick].Ready }

	c, err := dataflow.NewCircuit[string, string](fifo, in, out, dataflow.WithLogger(log))
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(ticks))
	c.Run(len(ticks), func(smp *dataflow.Sample[string, string]) {
		r := Record{
			Sample:   *smp,
			Event:    ev,
			Count:    fifo.Count(),
			Contents: fifo.Contents(),
		}
		if ev == elastic.Drop {
			log.Debug().Uint64("tick", smp.Tick).Str("data", smp.DataIn).Msg("dropped on full buffer")
		}
		recs = append(recs, r)
	})
	return recs, nil
}

// Demos returns the built-in scenarios.
//
func Demos() []*Scenario {
	return []*Scenario{
		{
			Name:     "fill, drop, drain",
			Capacity: 2,
			Fill:     "-",
			Ticks: []Tick{
				{Valid: true, Data: "A"},
				{Valid: true, Data: "B"},
				{Valid: true, Data: "C"},
				{Ready: true},
				{Ready: true},
				{Ready: true},
			},
		},
		{
			Name:     "simultaneous transfer at full capacity",
			Capacity: 1,
			Fill:     "-",
			Initial:  []string{"X"},
			Ticks: []Tick{
				{Valid: true, Ready: true, Data: "Y"},
				{Ready: true},
			},
		},
	}
}
