package randutil

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(7).Uint64(), New(8).Uint64())
}

func TestResolveSeed(t *testing.T) {
	clock := quartz.NewMock(t)
	now := clock.Now()

	seed := int64(99)
	assert.Equal(t, int64(99), ResolveSeed(&seed, clock))
	assert.Equal(t, now.UnixNano(), ResolveSeed(nil, clock))
}
