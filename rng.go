package push

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is the single seedable pseudorandom source a PushState carries
// (spec.md §3, "seedable RNG"). Every *.RAND instruction draws from it,
// so a State constructed with the same seed and driven with the same
// program reproduces bit-identical runs (spec.md §8 "determinism under
// seed"). It is built on golang.org/x/exp/rand rather than the stdlib
// math/rand so the same source can back both the uniform draws here and
// gonum's distuv.Normal, whose Src field expects an x/exp/rand.Source
// (Seed(uint64)), not a *math/rand.Rand (Seed(int64)).
type RNG struct {
	src *rand.Rand
}

// NewRNG returns an RNG seeded deterministically from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(uint64(seed)))}
}

// Bool returns a uniformly random boolean (BOOLEAN.RAND).
func (r *RNG) Bool() bool { return r.src.Intn(2) == 1 }

// Int returns a uniformly random integer in [min, max] inclusive
// (INTEGER.RAND). If min > max the range is empty and Int returns min.
func (r *RNG) Int(min, max int64) int64 {
	if max <= min {
		return min
	}
	span := max - min + 1
	return min + r.src.Int63n(span)
}

// Float returns a normally distributed float with the given mean and
// standard deviation (FLOAT.RAND, FLOATVECTOR.RAND), drawn via gonum's
// distuv.Normal rather than a hand-rolled Box-Muller transform — see
// DESIGN.md for why this is the one place a dedicated numeric library
// earns its keep in an otherwise rand-driven interpreter. A std of 0
// degenerates to always returning mean.
func (r *RNG) Float(mean, std float64) float64 {
	if std == 0 {
		return mean
	}
	d := distuv.Normal{Mu: mean, Sigma: std, Src: r.src}
	return d.Rand()
}

// Chance reports true with probability p (clamped to [0,1]), used for
// NewERCNameProbability and similar weighted coin flips.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.src.Float64() < p
}

// Pick returns a uniformly random index in [0, n).  n <= 0 returns -1.
func (r *RNG) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return r.src.Intn(n)
}

// Perm returns a random permutation of [0, n), used by BOOLVECTOR.RAND to
// place its true elements in uniformly random positions without repeats.
func (r *RNG) Perm(n int) []int {
	return r.src.Perm(n)
}
