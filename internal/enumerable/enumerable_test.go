// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)

	none := Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMap(t *testing.T) {
	strs := Map([]int{1, 20, 300}, strconv.Itoa)
	assert.Equal(t, []string{"1", "20", "300"}, strs)
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestReduce(t *testing.T) {
	product := Reduce([]float64{2, 3, 4}, 1.0, func(acc, f float64) float64 { return acc * f })
	assert.Equal(t, 24.0, product)

	joined := Reduce([]string{"a", "b"}, "", func(acc, s string) string { return acc + s })
	assert.Equal(t, "ab", joined)
}
