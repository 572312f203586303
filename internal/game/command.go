package game

import (
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

type CommandResult struct {
	Dropped     bool
	FoodCount   int
	CoinsEarned int
}

// ProcessCommand applies one shell-command tick: counters, hunger decay,
// the drop roll, periodic coin accrual and mission progress. It never
// fails; the result is a summary for the hook to render.
func (e *Engine) ProcessCommand(st *storage.State) CommandResult {
	st.Stats.TotalCommands++
	st.Stats.CommandsSinceDrop++

	st.Pet.Hunger -= e.Tables.Rules.HungerDecay
	if st.Pet.Hunger < 0 {
		st.Pet.Hunger = 0
	}

	dropped := e.rollDrop(st.Stats.CommandsSinceDrop)
	if dropped {
		st.User.Food++
		st.Stats.CommandsSinceDrop = 0
	}

	coins := 0
	if st.Stats.TotalCommands%e.Tables.Rules.CoinEveryCommands == 0 {
		st.User.Coins++
		coins = 1
	}

	e.UpdateMissionProgress(st, tables.MissionCommands, 1)

	return CommandResult{
		Dropped:     dropped,
		FoodCount:   st.User.Food,
		CoinsEarned: coins,
	}
}

// rollDrop is a hard-pity draw: guaranteed once the dry streak reaches the
// threshold, otherwise an independent fixed-probability roll.
func (e *Engine) rollDrop(sinceDrop int) bool {
	if sinceDrop >= e.Tables.Rules.GuaranteedDropEvery {
		return true
	}
	return e.RNG.Float64() < e.Tables.Rules.DropChance
}
