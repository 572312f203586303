package game

import "math/rand/v2"

// RandomSource abstracts the uniform generator so tests can script draws.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

type defaultRNG struct{}

func (defaultRNG) Float64() float64 { return rand.Float64() }
func (defaultRNG) IntN(n int) int   { return rand.IntN(n) }

func DefaultRNG() RandomSource { return defaultRNG{} }

// NewSeededRNG returns a replicable source for tests and simulations.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

type seededRNG struct{ r *rand.Rand }

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
