package parser_test

import (
	"testing"

	"github.com/lwmacct/251219-go-pkg-parser/pkg/parser"
	"github.com/stretchr/testify/assert"
)

func TestMap_KeepsInsertionOrder(t *testing.T) {
	m := parser.NewMap[int]().Set("b", 1).Set("a", 2).Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Has("c"))
}

func TestMapOf_SortsKeys(t *testing.T) {
	m := parser.MapOf(map[string]string{"z": "1", "a": "2", "m": "3"})
	assert.Equal(t, []string{"a", "m", "z"}, m.Keys())
	assert.Equal(t, map[string]string{"z": "1", "a": "2", "m": "3"}, m.ToMap())
}

func TestMap_CloneAndRange(t *testing.T) {
	m := parser.NewMap[string]().Set("x", "1").Set("y", "2")
	c := m.Clone().Set("z", "3")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, c.Len())

	var seen []string
	c.Range(func(k, _ string) bool {
		seen = append(seen, k)
		return k != "y"
	})
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestMap_NilSafe(t *testing.T) {
	var m *parser.Map[any]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
}
