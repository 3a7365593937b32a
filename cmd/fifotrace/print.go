// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/db47h/dataflow/elastic"
	"github.com/db47h/dataflow/internal/scenario"
	"github.com/fatih/color"
)

var eventColors = map[elastic.Event]*color.Color{
	elastic.Bypass:   color.New(color.FgCyan),
	elastic.Enqueue:  color.New(color.FgGreen),
	elastic.Dequeue:  color.New(color.FgYellow),
	elastic.Transfer: color.New(color.FgBlue),
	elastic.Drop:     color.New(color.FgRed, color.Bold),
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func data(valid bool, d string) string {
	if !valid {
		return "."
	}
	return d
}

// printTrace writes one line per tick. The event column comes last so that
// color escapes do not disturb the alignment.
func printTrace(w io.Writer, s *scenario.Scenario, recs []scenario.Record) error {
	if _, err := fmt.Fprintf(w, "# %s (capacity %d, initial [%s])\n", s.Name, s.Capacity, strings.Join(s.Initial, " ")); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "tick\tvin\trin\tdin\tvout\trout\tdout\tcount\tcontents\tevent")
	for _, r := range recs {
		ev := r.Event.String()
		if c := eventColors[r.Event]; c != nil {
			ev = c.Sprint(ev)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t[%s]\t%s\n",
			r.Tick,
			bit(r.ValidIn), bit(r.ReadyIn), data(r.ValidIn, r.DataIn),
			bit(r.Valid), bit(r.Ready), data(r.Valid, r.Data),
			r.Count, strings.Join(r.Contents, " "), ev)
	}
	return tw.Flush()
}
