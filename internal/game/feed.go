package game

import (
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

type FeedResult struct {
	ExpGained     int
	LevelUp       bool
	NewLevel      int
	TicketsEarned int
	Boosted       bool
}

// FeedPet consumes one food and converts it into hunger and exp. The
// caller must have checked Food > 0 and Hunger < 100; the engine does not
// re-validate.
//
// Ordering matters: hunger is raised first, then the exp award is gated on
// the new hunger being nonzero. Level-up advances at most one level per
// feed even if the exp total crosses several thresholds.
func (e *Engine) FeedPet(st *storage.State) FeedResult {
	rules := e.Tables.Rules

	st.User.Food--

	st.Pet.Hunger += rules.FeedHungerGain
	if st.Pet.Hunger > 100 {
		st.Pet.Hunger = 100
	}

	gained := rules.FeedExpGain
	boosted := false
	if st.User.ExpBoost > 0 {
		gained *= 2
		st.User.ExpBoost--
		boosted = true
	}
	if st.Pet.Hunger > 0 {
		st.Pet.Exp += gained
	}

	oldLevel := st.Pet.Level
	levelUp, newLevel := e.checkLevelUp(&st.Pet)

	tickets := 0
	if levelUp {
		st.Pet.Level = newLevel
		tickets = e.levelUpTickets(oldLevel, newLevel)
		st.User.Tickets += tickets
	}

	st.Stats.TotalFeed++
	e.UpdateMissionProgress(st, tables.MissionFeed, 1)

	return FeedResult{
		ExpGained:     gained,
		LevelUp:       levelUp,
		NewLevel:      st.Pet.Level,
		TicketsEarned: tickets,
		Boosted:       boosted,
	}
}

// checkLevelUp compares cumulative exp against the next level's threshold.
// Only a single step is evaluated per call.
func (e *Engine) checkLevelUp(pet *storage.Pet) (bool, int) {
	next := pet.Level + 1
	threshold, ok := e.Tables.LevelThresholds[next]
	if ok && pet.Exp >= threshold {
		return true, next
	}
	return false, pet.Level
}

// levelUpTickets sums the sparse milestone bonuses for every level in
// (old, new].
func (e *Engine) levelUpTickets(oldLevel, newLevel int) int {
	tickets := 0
	for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
		tickets += e.Tables.LevelTicketBonus[lvl]
	}
	return tickets
}

// ExpToNextLevel reports how much exp remains until the next threshold,
// or 0 at the level cap.
func (e *Engine) ExpToNextLevel(pet *storage.Pet) int {
	threshold, ok := e.Tables.LevelThresholds[pet.Level+1]
	if !ok {
		return 0
	}
	if remaining := threshold - pet.Exp; remaining > 0 {
		return remaining
	}
	return 0
}
