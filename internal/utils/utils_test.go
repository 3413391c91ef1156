package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestPRNGServiceZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	assert.NotZero(t, s.Seed())
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.InDelta(t, 1.5, Approach(1, 2, 5, 0.1), 1e-12)
}
