package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapProperty(t *testing.T) {
	m := Map{"contextPath": "/nacos", "empty": ""}

	v, ok := m.Property("contextPath")
	assert.True(t, ok)
	assert.Equal(t, "/nacos", v)

	v, ok = m.Property("empty")
	assert.True(t, ok, "explicitly empty value is still set")
	assert.Empty(t, v)

	_, ok = m.Property("missing")
	assert.False(t, ok)

	var nilMap Map
	_, ok = nilMap.Property("contextPath")
	assert.False(t, ok)
}

func TestChainFirstHitWins(t *testing.T) {
	high := Map{"contextPath": "/high"}
	low := Map{"contextPath": "/low", "serverAddr": "a:8848"}

	src := Chain(nil, high, low)

	v, ok := src.Property("contextPath")
	assert.True(t, ok)
	assert.Equal(t, "/high", v)

	v, ok = src.Property("serverAddr")
	assert.True(t, ok)
	assert.Equal(t, "a:8848", v)

	_, ok = src.Property("missing")
	assert.False(t, ok)
}

func TestChainEmpty(t *testing.T) {
	_, ok := Chain().Property("contextPath")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	assert.Equal(t, "fallback", Get(nil, "k", "fallback"))
	assert.Equal(t, "fallback", Get(Map{}, "k", "fallback"))
	assert.Equal(t, "v", Get(Map{"k": "v"}, "k", "fallback"))
}
