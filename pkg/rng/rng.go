package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG is a deterministic random source for one pipeline stage.
// The stage seed is derived as:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where H is SHA-256 and the first 8 bytes form the uint64 seed. Same
// inputs always produce the same sequence; different stages or configs
// produce independent sequences.
type RNG struct {
	seed   uint64
	stage  string
	source *rand.Rand
}

// NewRNG creates a stage-specific RNG by deriving a sub-seed from the
// master seed, the stage name, and a hash of the configuration.
func NewRNG(masterSeed uint64, stage string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stage))
	h.Write(configHash)

	derived := binary.BigEndian.Uint64(h.Sum(nil)[:8])

	return &RNG{
		seed:   derived,
		stage:  stage,
		source: rand.New(rand.NewSource(int64(derived))),
	}
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n).
// It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// WeightedIndex selects an index from weights with probability
// proportional to each weight, using a single draw against the
// cumulative sum. Every weight must be positive; it panics otherwise,
// and on an empty slice.
func (r *RNG) WeightedIndex(weights []int) int {
	if len(weights) == 0 {
		panic("rng: WeightedIndex requires at least one weight")
	}
	total := 0
	for _, w := range weights {
		if w <= 0 {
			panic("rng: WeightedIndex weights must be positive")
		}
		total += w
	}

	draw := r.source.Intn(total)
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Seed returns the derived seed for this RNG. Useful for logging which
// seed a stage actually ran with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Stage returns the stage name this RNG was created for.
func (r *RNG) Stage() string {
	return r.stage
}
