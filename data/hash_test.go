package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStructural(t *testing.T) {
	a := Map().Put("x", 1).Put("y", List().Add("a").Add(true))
	b := Map().Put("y", List().Add("a").Add(true)).Put("x", 1)
	assert.Equal(t, a.Hash(), b.Hash(), "insertion order does not affect the hash")

	c := Map().Put("x", 2).Put("y", List().Add("a").Add(true))
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestHashBytesAsText(t *testing.T) {
	assert.Equal(t, Of("abc").Hash(), Of([]byte("abc")).Hash())
}

func TestHashScalars(t *testing.T) {
	assert.NotEqual(t, Null().Hash(), Of(false).Hash())
	assert.NotEqual(t, Of(0).Hash(), Of(false).Hash())
	assert.Equal(t, Of(int64(7)).Hash(), Of(7).Hash())
	assert.Equal(t, Of(42).Hash(), Of(42.0).Hash(), "equal numbers hash alike")
}

func TestToNative(t *testing.T) {
	d := Map().Put("a", 1).Put("b", List().Add("x").Add(nil))
	n, ok := d.ToNative().(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, int64(1), n["a"])
	assert.Equal(t, []any{"x", nil}, n["b"])

	back := FromNative(n)
	assert.True(t, d.Equal(back))
}

func TestYAMLBridge(t *testing.T) {
	d, err := FromYAML([]byte("foo: bar\nanswer: 42\nlist:\n  - 1\n  - a\n"))
	assert.NoError(t, err)
	assert.Equal(t, "bar", d.Get("foo").AsString())
	assert.Equal(t, 42, d.Get("answer").AsInt())
	assert.Equal(t, 2, d.Get("list").Len())

	out, err := d.ToYAML()
	assert.NoError(t, err)
	rt, err := FromYAML(out)
	assert.NoError(t, err)
	assert.True(t, d.Equal(rt))

	_, err = FromYAML([]byte("a: [1, 2\nb: oops"))
	assert.Error(t, err)
}
