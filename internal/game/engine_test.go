package game

import (
	"testing"
	"time"

	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

// scriptRNG replays queued draws. An exhausted queue returns values that
// lose every probabilistic roll, so tests only script what they assert on.
type scriptRNG struct {
	floats []float64
	ints   []int
}

func (s *scriptRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.999999
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(tables.Default())
	e.RNG = &scriptRNG{}
	e.Now = fixedDay("2026-08-30")
	return e
}

func fixedDay(day string) func() time.Time {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func newTestState() *storage.State {
	return storage.DefaultState()
}

func TestSeededRNGReplicates(t *testing.T) {
	a := NewSeededRNG(42)
	b := NewSeededRNG(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("seeded sources diverged at draw %d", i)
		}
		if a.IntN(100) != b.IntN(100) {
			t.Fatalf("seeded sources diverged at int draw %d", i)
		}
	}
}

func TestGachaRatesSumToOne(t *testing.T) {
	tb := tables.Default()
	sum := 0.0
	for _, rr := range tb.GachaRates {
		sum += rr.Rate
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("gacha rates sum to %v, want 1", sum)
	}
}
