package sim

import "math/rand/v2"

// RNG is the uniform-[0,1) randomness source consumed by the engine. It is
// injected everywhere a sample is drawn so that tests can substitute a
// deterministic sequence.
type RNG interface {
	Float64() float64
}

// SystemRNG draws from the process-wide math/rand/v2 source.
type SystemRNG struct{}

func (SystemRNG) Float64() float64 { return rand.Float64() }

// NewSeeded returns a reproducible RNG for a fixed seed.
func NewSeeded(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeqRNG replays a fixed queue of samples, cycling when exhausted. Test use.
type SeqRNG struct {
	Seq []float64
	i   int
}

func (r *SeqRNG) Float64() float64 {
	if len(r.Seq) == 0 {
		return 0.5
	}
	v := r.Seq[r.i%len(r.Seq)]
	r.i++
	return v
}

// Between samples uniformly from [min, max).
func Between(rng RNG, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Chance reports a success roll with probability p.
func Chance(rng RNG, p float64) bool {
	return rng.Float64() < p
}

// Intn samples uniformly from [0, n).
func Intn(rng RNG, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(rng.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// volMult samples the per-offer volatility multiplier: uniformly distributed
// around 1.0 with half-width vol, floored at 0.
func volMult(rng RNG, vol float64) float64 {
	m := 1 + (rng.Float64()-0.5)*2*vol
	if m < 0 {
		return 0
	}
	return m
}
