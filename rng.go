package tessella

import "time"

// LCG parameters. These are part of the reproducibility contract: an
// installation rendered from seed s must look identical on every machine,
// so the generator cannot be swapped for a platform PRNG.
const (
	rngMultiplier = 1664525
	rngIncrement  = 1013904223
	rngModulus    = 982451497
)

// Rand is a deterministic linear-congruential generator.
//
// Two Rand values seeded identically produce identical sequences for every
// derived method (IntBelow, FloatUnit, Pick, Shuffle, ...). All randomness
// in a Renderer flows through a single Rand so that a seed fully determines
// the picture.
//
// Rand is not safe for concurrent use; the frame loop is
// single-threaded.
type Rand struct {
	state int64
}

// NewRand creates a generator seeded with the given value.
func NewRand(seed int64) *Rand {
	return &Rand{state: seed}
}

// NewRandFromClock creates a generator seeded from the wall clock.
// Use NewRand for reproducible runs.
func NewRandFromClock() *Rand {
	return &Rand{state: time.Now().UnixNano() % rngModulus}
}

// Seed resets the generator state.
func (r *Rand) Seed(seed int64) {
	r.state = seed
}

// Next advances the generator and returns the new state,
// a non-negative integer below the modulus.
func (r *Rand) Next() int64 {
	r.state = (rngMultiplier*r.state + rngIncrement) % rngModulus
	if r.state < 0 {
		r.state += rngModulus
	}
	return r.state
}

// IntBelow returns a value in [0, spread). A spread of zero or less
// returns 0 without consuming a draw.
func (r *Rand) IntBelow(spread int) int {
	if spread <= 0 {
		return 0
	}
	return int(r.Next() % int64(spread))
}

// IntIn returns a value in [min, max] inclusive.
func (r *Rand) IntIn(min, max int) int {
	return min + r.IntBelow(max-min+1)
}

// FloatUnit returns a value in [0, 1).
func (r *Rand) FloatUnit() float64 {
	return float64(r.Next()) / float64(rngModulus)
}

// FloatIn returns a value in [min, max).
func (r *Rand) FloatIn(min, max float64) float64 {
	return min + (max-min)*r.FloatUnit()
}

// Jitter perturbs v by a bounded random offset in [-amount, amount).
func (r *Rand) Jitter(v, amount float64) float64 {
	return v - amount + 2*amount*r.FloatUnit()
}

// Pick returns a uniformly chosen element of list.
// An empty list returns ErrEmptyInput.
func Pick[T any](r *Rand, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, ErrEmptyInput
	}
	return list[r.IntBelow(len(list))], nil
}

// Shuffle returns a new slice holding a Fisher-Yates permutation of list.
// The input is left unmodified. Exactly one Next is consumed per swap, so
// the permutation is part of the deterministic stream.
// An empty list returns ErrEmptyInput.
func Shuffle[T any](r *Rand, list []T) ([]T, error) {
	if len(list) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]T, len(list))
	copy(out, list)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntBelow(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
