package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchboardLookup(t *testing.T) {
	b := NewSwitchboard(&counterGame{id: "zeta"}, &counterGame{id: "alpha"})

	assert.Equal(t, []string{"alpha", "zeta"}, b.IDs())
	assert.Equal(t, 2, b.Len())
	assert.Nil(t, b.Current())

	g, ok := b.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, "zeta", g.ID())

	_, ok = b.Get("missing")
	assert.False(t, ok)
}
