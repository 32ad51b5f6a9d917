/*package rand provides the seeded uniform generators used by the estimators.

A Generator is not safe for concurrent use. Code which needs randomness in
more than one goroutine should call Split and hand each goroutine its own
child generator.
*/
package rand

import (
	"time"

	"github.com/taylorza/go-lfsr"
	"golang.org/x/exp/rand"
)

// Generator is a seeded source of uniform floats in [0, 1).
type Generator struct {
	r     *rand.Rand
	seed  uint64
	draws int64
}

// New creates a generator with the given seed. Two generators created with
// the same seed produce identical sequences.
func New(seed uint64) *Generator {
	return &Generator{ r: rand.New(rand.NewSource(seed)), seed: seed }
}

// NewTimeSeed creates a generator seeded from the current time.
func NewTimeSeed() *Generator {
	return New(uint64(time.Now().UnixNano()))
}

// Seed returns the seed the generator was created with.
func (gen *Generator) Seed() uint64 { return gen.seed }

// Draws returns the number of uniform values drawn so far.
func (gen *Generator) Draws() int64 { return gen.draws }

// Float64 returns a uniform value in [0, 1).
func (gen *Generator) Float64() float64 {
	gen.draws++
	return gen.r.Float64()
}

// Uniform returns a uniform value in [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high - low) * gen.Float64()
}

// UniformAt fills target with uniform values in [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target { target[i] = gen.Uniform(low, high) }
}

// Split creates n child generators whose seeds are taken from a linear
// feedback shift register keyed by the parent's seed. Splitting does not
// advance the parent, and the children depend only on the parent seed and
// their index.
func (gen *Generator) Split(n int) []*Generator {
	children := make([]*Generator, n)
	if n == 0 { return children }

	key := uint32(gen.seed) ^ uint32(gen.seed >> 32)
	if key == 0 { key = 1 } // zero is a fixed point of the register.
	reg := lfsr.NewLfsr32(key)

	for i := range children {
		lo, _ := reg.Next()
		hi, _ := reg.Next()
		children[i] = New(uint64(hi) << 32 | uint64(lo))
	}
	return children
}
