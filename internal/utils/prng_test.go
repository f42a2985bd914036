package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPRNGServiceZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.5), Clamp(0.1, 0.5, 4))
	assert.Equal(t, float32(4), Clamp(9, 0.5, 4))
	assert.Equal(t, float32(9), Clamp(9, 0.5, 0), "zero ceiling means unbounded")
}

func TestSign(t *testing.T) {
	assert.Equal(t, float32(1), Sign(3))
	assert.Equal(t, float32(-1), Sign(-0.1))
	assert.Equal(t, float32(0), Sign(0))
}
