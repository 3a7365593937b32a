// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dataflow_test

import (
	"bytes"
	"testing"

	df "github.com/db47h/dataflow"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuit_nil(t *testing.T) {
	_, err := df.NewCircuit[int, int](nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, df.ErrNilTransducer, errors.Cause(err))
}

func TestCircuit_Run(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log := zerolog.New(&buf).Level(zerolog.TraceLevel)

	c, err := df.NewCircuit(df.Arr(func(x int) int { return x + 1 }),
		df.Values(10, 20, 30), df.ReadyPattern(true, false),
		df.WithLogger(log))
	require.NoError(t, err)

	var samples []df.Sample[int, int]
	c.Run(4, func(s *df.Sample[int, int]) { samples = append(samples, *s) })

	require.Len(t, samples, 4)
	assert.Equal(t, uint64(4), c.Steps())
	for i, s := range samples[:3] {
		assert.Equal(t, uint64(i), s.Tick)
		assert.True(t, s.Valid)
		assert.Equal(t, (i+1)*10+1, s.Data)
		assert.Equal(t, i%2 == 0, s.Delivered())
		assert.Equal(t, i%2 == 0, s.Accepted())
	}
	assert.False(t, samples[3].Valid)
	assert.False(t, samples[3].Delivered())
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte(`"message":"tick"`)))
}

func TestCircuit_defaults(t *testing.T) {
	c, err := df.NewCircuit(df.Identity[string](), nil, nil)
	require.NoError(t, err)
	s := c.Step()
	assert.False(t, s.ValidIn)
	assert.True(t, s.ReadyIn)
	assert.True(t, s.Ready)
	assert.Equal(t, "", s.Data)
}

func TestIO(t *testing.T) {
	assert.False(t, df.NeverReady(3))
	assert.True(t, df.ReadyPattern()(5))
	v, d := df.Idle[int]()(0)
	assert.False(t, v)
	assert.Zero(t, d)
}
