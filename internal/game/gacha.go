package game

import (
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

type GachaResult struct {
	Rarity tables.Rarity
	Item   tables.Item
	IsNew  bool
}

// PullGacha consumes one ticket and resolves a rarity, then an item within
// that rarity's pool. The caller must have checked Tickets > 0. Duplicate
// items leave the collection untouched and report IsNew=false.
func (e *Engine) PullGacha(st *storage.State) GachaResult {
	st.User.Tickets--
	st.Stats.TotalGacha++

	rarity := e.rollRarity()
	if rarity == tables.RaritySSR {
		st.Stats.SSRCount++
	}

	pool := e.Tables.GachaPools[rarity]
	item := pool[e.RNG.IntN(len(pool))]

	isNew := !contains(st.Collection, item.ID)
	if isNew {
		st.Collection = append(st.Collection, item.ID)
	}

	e.UpdateMissionProgress(st, tables.MissionGacha, 1)

	return GachaResult{Rarity: rarity, Item: item, IsNew: isNew}
}

// rollRarity walks the rate table in declared order, accumulating
// probabilities against a single uniform draw. If rounding lets the walk
// run off the end, the last (lowest) tier wins.
func (e *Engine) rollRarity() tables.Rarity {
	roll := e.RNG.Float64()

	cumulative := 0.0
	for _, rr := range e.Tables.GachaRates {
		cumulative += rr.Rate
		if roll < cumulative {
			return rr.Rarity
		}
	}
	return e.Tables.GachaRates[len(e.Tables.GachaRates)-1].Rarity
}
