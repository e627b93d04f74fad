// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmflannery/units/unit"
)

func TestConvertAll(t *testing.T) {
	values := make([]Value, 0, 100)
	for i := range 100 {
		values = append(values, MustNew(float64(i), "km", "h^-1"))
	}

	converted, err := ConvertAll(context.Background(), values, unit.SI)
	require.NoError(t, err)
	require.Len(t, converted, len(values))
	for i, v := range converted {
		assert.InDelta(t, float64(i)/3.6, v.Magnitude(), 1e-9)
		assert.Equal(t, []string{"m", "s^-1"}, v.Units().Tokens())
	}

	converted, err = ConvertAll(context.Background(), values[:3], unit.Display)
	require.NoError(t, err)
	assert.Equal(t, []string{"ft", "s^-1"}, converted[2].Units().Tokens())

	converted, err = ConvertAll(context.Background(), nil, unit.SI)
	require.NoError(t, err)
	assert.Empty(t, converted)
}

func TestConvertAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertAll(ctx, []Value{MustNew(1, "m")}, unit.SI)
	assert.ErrorIs(t, err, context.Canceled)
}
