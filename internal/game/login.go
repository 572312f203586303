package game

import (
	"time"

	"shellgotchi/internal/storage"
)

type RewardType string

const (
	RewardNone     RewardType = ""
	RewardTicket   RewardType = "ticket"
	RewardFragment RewardType = "fragment"
)

type LoginResult struct {
	IsNewDay   bool
	RewardType RewardType
	Streak     int
}

// CheckLoginBonus resolves the once-per-calendar-day login flow: streak
// bookkeeping, the daily mission reset, and the fragment/ticket reward.
// On a day that was already counted it is a no-op.
func (e *Engine) CheckLoginBonus(st *storage.State) LoginResult {
	today := e.today()

	if st.User.LastLogin == today {
		return LoginResult{IsNewDay: false, RewardType: RewardNone, Streak: st.User.LoginStreak}
	}

	if st.User.LastLogin == "" {
		st.User.LoginStreak = 1
	} else if last, err := time.Parse(dateLayout, st.User.LastLogin); err != nil {
		st.User.LoginStreak = 1
	} else {
		switch diff := daysBetween(last, e.Now()); {
		case diff == 1:
			st.User.LoginStreak++
		case diff > 1:
			st.User.LoginStreak = 1
		}
	}

	if st.User.LoginStreak > st.Stats.MaxLoginStreak {
		st.Stats.MaxLoginStreak = st.User.LoginStreak
	}
	st.User.LastLogin = today

	// New day: missions reset before any reward is computed.
	e.ResetDaily(st)

	rules := e.Tables.Rules
	rewardType := RewardFragment
	if st.User.LoginStreak > 0 && st.User.LoginStreak%rules.TicketStreakEvery == 0 {
		st.User.Tickets++
		rewardType = RewardTicket
	} else {
		st.User.TicketFragments++
		// Conversion happens immediately, possibly on the same call
		// that granted the fragment.
		if st.User.TicketFragments >= rules.FragmentsPerTicket {
			st.User.TicketFragments -= rules.FragmentsPerTicket
			st.User.Tickets++
		}
	}

	return LoginResult{IsNewDay: true, RewardType: rewardType, Streak: st.User.LoginStreak}
}

// daysBetween counts whole calendar days from a to b, ignoring
// time-of-day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
