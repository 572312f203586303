package tables

import (
	"fmt"
	"math"
)

const rateSumEpsilon = 1e-9

// validate rejects table sets the engine cannot run on. The defaults always
// pass; this mostly guards hand-edited override files.
func validate(t *Tables) error {
	r := t.Rules
	if r.DropChance < 0 || r.DropChance > 1 {
		return fmt.Errorf("tables: drop_chance %v outside [0,1]", r.DropChance)
	}
	if r.GuaranteedDropEvery < 1 {
		return fmt.Errorf("tables: guaranteed_drop_every must be >= 1, got %d", r.GuaranteedDropEvery)
	}
	if r.HungerDecay < 0 {
		return fmt.Errorf("tables: hunger_decay must be >= 0, got %v", r.HungerDecay)
	}
	if r.FeedHungerGain <= 0 {
		return fmt.Errorf("tables: feed_hunger_gain must be > 0, got %v", r.FeedHungerGain)
	}
	if r.FeedExpGain <= 0 {
		return fmt.Errorf("tables: feed_exp_gain must be > 0, got %d", r.FeedExpGain)
	}
	if r.FragmentsPerTicket < 1 {
		return fmt.Errorf("tables: fragments_per_ticket must be >= 1, got %d", r.FragmentsPerTicket)
	}
	if r.TicketStreakEvery < 1 {
		return fmt.Errorf("tables: ticket_streak_every must be >= 1, got %d", r.TicketStreakEvery)
	}
	if r.CoinEveryCommands < 1 {
		return fmt.Errorf("tables: coin_every_commands must be >= 1, got %d", r.CoinEveryCommands)
	}

	if len(t.GachaRates) == 0 {
		return fmt.Errorf("tables: no gacha rates defined")
	}
	sum := 0.0
	for _, rr := range t.GachaRates {
		if !rr.Rarity.IsValid() {
			return fmt.Errorf("tables: unknown rarity %q", rr.Rarity)
		}
		if rr.Rate < 0 || rr.Rate > 1 {
			return fmt.Errorf("tables: rate %v for %s outside [0,1]", rr.Rate, rr.Rarity)
		}
		if len(t.GachaPools[rr.Rarity]) == 0 {
			return fmt.Errorf("tables: empty item pool for rarity %s", rr.Rarity)
		}
		sum += rr.Rate
	}
	if math.Abs(sum-1.0) > rateSumEpsilon {
		return fmt.Errorf("tables: gacha rates sum to %v, want 1", sum)
	}

	for _, m := range t.Missions {
		if !m.Type.IsValid() {
			return fmt.Errorf("tables: mission %s has unknown type %q", m.ID, m.Type)
		}
		if m.Target < 1 {
			return fmt.Errorf("tables: mission %s target must be >= 1", m.ID)
		}
	}
	return nil
}
