package game

import (
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

// statValue derives the current value for an achievement source from the
// lifetime stats. The switch is the single dispatch point for the closed
// source set.
func statValue(st *storage.State, src tables.StatSource) int {
	switch src {
	case tables.SourceTotalCommands:
		return st.Stats.TotalCommands
	case tables.SourceLevel:
		return st.Pet.Level
	case tables.SourceTotalGacha:
		return st.Stats.TotalGacha
	case tables.SourceSSRCount:
		return st.Stats.SSRCount
	case tables.SourceLoginStreak:
		return st.Stats.MaxLoginStreak
	case tables.SourceCollectionCount:
		return len(st.Collection)
	default:
		return 0
	}
}

// CheckAchievements re-derives progress for every achievement not yet in
// the ledger and unlocks those whose target is met. Each unlock appends to
// the ledger and grants its reward exactly once; entries already in the
// ledger are never re-evaluated.
func (e *Engine) CheckAchievements(st *storage.State) []tables.Achievement {
	var newlyUnlocked []tables.Achievement
	for _, a := range e.Tables.Achievements {
		if contains(st.Achievements, a.ID) {
			continue
		}
		if statValue(st, a.Source) >= a.Target {
			st.Achievements = append(st.Achievements, a.ID)
			applyReward(&st.User, a.Reward)
			newlyUnlocked = append(newlyUnlocked, a)
		}
	}
	return newlyUnlocked
}

type AchievementView struct {
	Achievement tables.Achievement
	Current     int
	Unlocked    bool
}

// AchievementStatus reports every achievement with progress clamped to the
// target so displays never overshoot.
func (e *Engine) AchievementStatus(st *storage.State) []AchievementView {
	views := make([]AchievementView, 0, len(e.Tables.Achievements))
	for _, a := range e.Tables.Achievements {
		current := statValue(st, a.Source)
		if current > a.Target {
			current = a.Target
		}
		views = append(views, AchievementView{
			Achievement: a,
			Current:     current,
			Unlocked:    contains(st.Achievements, a.ID),
		})
	}
	return views
}
