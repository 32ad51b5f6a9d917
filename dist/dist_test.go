package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/effarea/rand"
)

func TestCos2Range(t *testing.T) {
	assert.Equal(t, math.Pi/2, Cos2(0))
	assert.InDelta(t, 0, Cos2(math.Nextafter(1, 0)), 1e-7)

	prev := Cos2(0)
	for i := 1; i < 1000; i++ {
		theta := Cos2(float64(i) / 1000)
		if theta < 0 || theta > math.Pi/2 {
			t.Fatalf("%d) Cos2 returned %g, outside [0, pi/2].", i, theta)
		} else if theta >= prev {
			t.Fatalf("%d) Cos2 is not decreasing: %g >= %g.", i, theta, prev)
		}
		prev = theta
	}
}

func TestCos2Table(t *testing.T) {
	eps := 1e-12
	table := []struct{
		u, theta float64
	}{
		{0, math.Pi/2},
		{0.25, math.Pi/3},
		{0.5, math.Pi/4},
		{0.75, math.Pi/6},
	}

	for i, test := range table {
		if theta := Cos2(test.u); math.Abs(theta - test.theta) > eps {
			t.Errorf("%d) Cos2(%g) = %g, expected %g.",
				i+1, test.u, theta, test.theta)
		}
	}
}

func TestCos2Distribution(t *testing.T) {
	gen := rand.New(1234)
	s := Cos2Sampler{}
	n := 100 * 1000

	edges := []float64{math.Pi/12, math.Pi/6, math.Pi/4, math.Pi/3, 1.4}
	counts := make([]int, len(edges))
	for i := 0; i < n; i++ {
		theta := s.Sample(gen)
		require.True(t, theta >= 0 && theta <= math.Pi/2)
		for j, e := range edges {
			if theta <= e { counts[j]++ }
		}
	}

	for j, e := range edges {
		frac := float64(counts[j]) / float64(n)
		assert.InDelta(t, Cos2CDF(e), frac, 0.01, "CDF at %g", e)
	}
}

func TestSamplerDraws(t *testing.T) {
	gen := rand.New(9)
	Cos2Sampler{}.Sample(gen)
	assert.Equal(t, int64(1), gen.Draws())

	theta := FixedAngle(0.3).Sample(gen)
	assert.Equal(t, 0.3, theta)
	assert.Equal(t, int64(1), gen.Draws())
}

func TestCos2CDF(t *testing.T) {
	assert.Equal(t, 0.0, Cos2CDF(-1))
	assert.Equal(t, 1.0, Cos2CDF(2))
	assert.InDelta(t, 0.5, Cos2CDF(math.Pi/4), 1e-12)
}
