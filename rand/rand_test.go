package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReproducible(t *testing.T) {
	g1, g2 := New(99), New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Float64(), g2.Float64())
	}
	assert.Equal(t, int64(100), g1.Draws())
	assert.Equal(t, uint64(99), g1.Seed())
}

func TestUniform(t *testing.T) {
	gen := New(3)
	xs := make([]float64, 10*1000)
	gen.UniformAt(-2, 5, xs)

	sum := 0.0
	for i, x := range xs {
		if x < -2 || x >= 5 {
			t.Fatalf("%d) Uniform value %g outside [-2, 5).", i, x)
		}
		sum += x
	}
	assert.InDelta(t, 1.5, sum / float64(len(xs)), 0.1)
	assert.Equal(t, int64(len(xs)), gen.Draws())
}

func TestSplit(t *testing.T) {
	gen := New(12345)
	a, b := gen.Split(8), gen.Split(8)
	require.Len(t, a, 8)
	assert.Equal(t, int64(0), gen.Draws())

	seeds := map[uint64]bool{}
	for i := range a {
		assert.Equal(t, a[i].Seed(), b[i].Seed(), "%d)", i)
		seeds[a[i].Seed()] = true
	}
	assert.Len(t, seeds, 8)

	// A longer split shares its prefix with a shorter one.
	c := gen.Split(3)
	for i := range c {
		assert.Equal(t, a[i].Seed(), c[i].Seed(), "%d)", i)
	}

	assert.Len(t, New(0).Split(4), 4)
	assert.Len(t, gen.Split(0), 0)
}
