package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
)

func TestDeepEqualPrimitives(t *testing.T) {
	assert.True(t, deepEqual(nil, nil))
	assert.False(t, deepEqual(nil, false))
	assert.True(t, deepEqual(true, true))
	assert.False(t, deepEqual(true, false))
	assert.True(t, deepEqual("a", "a"))
	assert.False(t, deepEqual("a", "b"))
}

func TestDeepEqualIntegerFloatCrossEquality(t *testing.T) {
	assert.True(t, deepEqual(json.Number("1"), float64(1)))
	assert.True(t, deepEqual(json.Number("1"), json.Number("1.0")))
	assert.False(t, deepEqual(json.Number("1"), json.Number("1.5")))
}

func TestDeepEqualArraysAndObjectsIgnoreKeyOrder(t *testing.T) {
	one, two := json.Number("1"), json.Number("2")
	a := map[string]any{"x": one, "y": []any{one, two}}
	b := map[string]any{"y": []any{one, two}, "x": one}
	assert.True(t, deepEqual(a, b))

	c := map[string]any{"y": []any{two, one}, "x": one}
	assert.False(t, deepEqual(a, c))
}

func TestDeepEqualIsReflexive(t *testing.T) {
	values := []any{nil, true, "x", float64(3), []any{json.Number("1"), "a"}, map[string]any{"k": json.Number("1")}}
	for _, v := range values {
		assert.True(t, deepEqual(v, v))
	}
}
