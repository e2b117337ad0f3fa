package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OrderedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	assert.Equal(t, []string{"a", "b", "c"}, OrderedKeys(m))
}

func Test_Stack(t *testing.T) {
	assert := assert.New(t)

	var s Stack[int]
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(3, s.Len())
	assert.Equal(3, s.Peek())

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
	assert.False(s.Empty())
}

func Test_SVSet(t *testing.T) {
	assert := assert.New(t)

	a := NewSVSet[int]()
	a.Set("x", 1)
	a.Set("y", 2)

	b := NewSVSet[int]()
	b.Set("y", 99)
	b.Set("x", 100)

	assert.True(a.Equal(b))
	assert.Equal(2, a.Len())
	assert.True(a.Has("x"))
	assert.False(a.Has("z"))
}

func Test_StringSet(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet()
	s.Add("PLUS")
	s.Add("NUMBER")
	s.Add("PLUS")

	assert.Equal(2, s.Len())
	assert.Equal([]string{"NUMBER", "PLUS"}, s.Elements())

	s.Remove("PLUS")
	assert.False(s.Has("PLUS"))
}
