package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(seq func(func(string, int) bool)) (keys []string, vals []int) {
	for k, v := range seq {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := IterSeq2Of("a", 1)
	b := IterSeq2Of("b", 2)

	keys, vals := collect(IterSeq2Concat(a, b))
	assert.Equal([]string{"a", "b"}, keys)
	assert.Equal([]int{1, 2}, vals)

	// Early stop from the consumer.
	for k := range IterSeq2Concat(a, b) {
		assert.Equal("a", k)
		break
	}
}

func TestIterSeq2Take(t *testing.T) {
	assert := assert.New(t)

	seq := slices.All([]string{"x0", "x1", "x2", "x3"})

	var got []int
	for n := range IterSeq2Take(seq, 2) {
		got = append(got, n)
	}
	assert.Equal([]int{0, 1}, got)

	got = nil
	for n := range IterSeq2Take(seq, 0) {
		got = append(got, n)
	}
	assert.Nil(got)

	m := map[string]int{"only": 1}
	keys, _ := collect(IterSeq2Take(maps.All(m), 10))
	assert.Equal([]string{"only"}, keys)
}
