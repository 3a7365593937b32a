// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vec_test

import (
	"testing"

	"github.com/db47h/dataflow/vec"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := vec.New(0, 'x')
	assert.Equal(t, vec.ErrCapacity, errors.Cause(err))

	v, err := vec.New(3, 'x')
	require.NoError(t, err)
	assert.Equal(t, 3, v.Cap())
	for i := 0; i < v.Cap(); i++ {
		assert.Equal(t, 'x', v.At(i))
	}
	assert.Panics(t, func() { v.At(3) })
}

func TestFrom(t *testing.T) {
	v, err := vec.From(4, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Newest())
	assert.Equal(t, 1, v.Oldest(2))
	assert.Equal(t, []int{0, 0, 1, 2}, v.Slice(4))

	_, err = vec.From(1, 0, 1, 2)
	assert.Equal(t, vec.ErrCapacity, errors.Cause(err))
}

func TestShiftIn(t *testing.T) {
	v, err := vec.From(3, 0, 1, 2, 3)
	require.NoError(t, err)
	c := v.Clone()

	for i, x := range []int{4, 5, 6, 7} {
		assert.Equal(t, i+1, v.ShiftIn(x), "dropped")
	}
	assert.Equal(t, []int{5, 6, 7}, v.Slice(3))
	assert.Equal(t, []int{1, 2, 3}, c.Slice(3), "clone")
	assert.Equal(t, []int{6, 7}, v.Slice(2))
	assert.Empty(t, v.Slice(0))
}

func TestShiftIn_zero(t *testing.T) {
	var v vec.Vec[int]
	defer func() {
		r := recover()
		_, ok := r.(error)
		assert.True(t, ok, "expected an error panic value, got %v", r)
	}()
	v.ShiftIn(1)
	t.Fatal("ShiftIn on a zero Vec did not panic")
}
