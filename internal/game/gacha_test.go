package game

import (
	"testing"

	"shellgotchi/internal/tables"
)

func TestPullGachaZeroRollHitsFirstTier(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()

	e.RNG = &scriptRNG{floats: []float64{0.0}, ints: []int{0}}
	res := e.PullGacha(st)
	if res.Rarity != tables.RaritySSR {
		t.Fatalf("rarity=%s at roll 0, want SSR", res.Rarity)
	}
	if st.Stats.SSRCount != 1 {
		t.Fatalf("ssr_count=%d, want 1", st.Stats.SSRCount)
	}
	if st.User.Tickets != 0 {
		t.Fatalf("tickets=%d, want 0", st.User.Tickets)
	}
	if st.Stats.TotalGacha != 1 {
		t.Fatalf("total_gacha=%d, want 1", st.Stats.TotalGacha)
	}
}

func TestPullGachaTierBoundaries(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		roll float64
		want tables.Rarity
	}{
		{0.009, tables.RaritySSR},
		{0.01, tables.RaritySR},
		{0.099, tables.RaritySR},
		{0.10, tables.RarityR},
		{0.999, tables.RarityR},
	}
	for _, tc := range cases {
		st := newTestState()
		e.RNG = &scriptRNG{floats: []float64{tc.roll}}
		if res := e.PullGacha(st); res.Rarity != tc.want {
			t.Fatalf("roll=%v rarity=%s, want %s", tc.roll, res.Rarity, tc.want)
		}
	}
}

func TestPullGachaDuplicateIsNotNew(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.Tickets = 2

	e.RNG = &scriptRNG{floats: []float64{0.5, 0.5}, ints: []int{1, 1}}
	first := e.PullGacha(st)
	if !first.IsNew {
		t.Fatalf("first pull of %s should be new", first.Item.ID)
	}
	sizeAfterFirst := len(st.Collection)

	second := e.PullGacha(st)
	if second.Item.ID != first.Item.ID {
		t.Fatalf("scripted rng should repeat the item, got %s then %s", first.Item.ID, second.Item.ID)
	}
	if second.IsNew {
		t.Fatalf("duplicate pull reported as new")
	}
	if len(st.Collection) != sizeAfterFirst {
		t.Fatalf("collection grew on duplicate: %d -> %d", sizeAfterFirst, len(st.Collection))
	}
}

func TestPullGachaFeedsMission(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	e.ResetDaily(st)

	e.PullGacha(st)
	if !contains(st.Daily.Completed, "gacha_1") {
		t.Fatalf("gacha_1 mission should complete after one pull")
	}
}
