package game

import (
	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

// ResetDaily reinitializes the mission ledger when the stored date is not
// today. Idempotent when called again on the same day.
func (e *Engine) ResetDaily(st *storage.State) {
	today := e.today()
	if st.Daily.Date == today {
		return
	}

	st.Daily.Date = today
	st.Daily.Progress = make(map[string]int, len(e.Tables.Missions))
	for _, m := range e.Tables.Missions {
		st.Daily.Progress[m.ID] = 0
	}
	st.Daily.Completed = []string{}
	st.Daily.Claimed = []string{}
}

// UpdateMissionProgress adds amount to every mission of the given type and
// returns the missions that newly crossed their target.
func (e *Engine) UpdateMissionProgress(st *storage.State, mt tables.MissionType, amount int) []tables.Mission {
	var newlyCompleted []tables.Mission
	for _, m := range e.Tables.Missions {
		if m.Type != mt {
			continue
		}
		st.Daily.Progress[m.ID] += amount
		if st.Daily.Progress[m.ID] >= m.Target && !contains(st.Daily.Completed, m.ID) {
			st.Daily.Completed = append(st.Daily.Completed, m.ID)
			newlyCompleted = append(newlyCompleted, m)
		}
	}
	return newlyCompleted
}

type ClaimResult struct {
	Mission tables.Mission
	Reward  tables.Reward
}

// ClaimMission pays out a completed mission exactly once. A second claim
// on the same day fails with ErrAlreadyClaimed and grants nothing.
func (e *Engine) ClaimMission(st *storage.State, id string) (*ClaimResult, error) {
	m, ok := e.Tables.MissionByID(id)
	if !ok {
		return nil, &NotFoundError{Kind: "mission", ID: id}
	}
	if !contains(st.Daily.Completed, id) {
		return nil, ErrNotCompleted
	}
	if contains(st.Daily.Claimed, id) {
		return nil, ErrAlreadyClaimed
	}

	applyReward(&st.User, m.Reward)
	st.Daily.Claimed = append(st.Daily.Claimed, id)

	return &ClaimResult{Mission: m, Reward: m.Reward}, nil
}

type MissionView struct {
	Mission   tables.Mission
	Progress  int
	Completed bool
	Claimed   bool
}

// MissionStatus reports every defined mission with today's progress.
func (e *Engine) MissionStatus(st *storage.State) []MissionView {
	views := make([]MissionView, 0, len(e.Tables.Missions))
	for _, m := range e.Tables.Missions {
		progress := st.Daily.Progress[m.ID]
		if progress > m.Target {
			progress = m.Target
		}
		views = append(views, MissionView{
			Mission:   m,
			Progress:  progress,
			Completed: contains(st.Daily.Completed, m.ID),
			Claimed:   contains(st.Daily.Claimed, m.ID),
		})
	}
	return views
}
