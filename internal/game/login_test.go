package game

import "testing"

func TestLoginBonusFirstLogin(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()

	res := e.CheckLoginBonus(st)
	if !res.IsNewDay {
		t.Fatalf("first login should be a new day")
	}
	if res.Streak != 1 || st.User.LoginStreak != 1 {
		t.Fatalf("streak=%d, want 1", st.User.LoginStreak)
	}
	if st.User.LastLogin != "2026-08-30" {
		t.Fatalf("last_login=%q, want today", st.User.LastLogin)
	}
	if res.RewardType != RewardFragment {
		t.Fatalf("reward_type=%q, want fragment", res.RewardType)
	}
	if st.User.TicketFragments != 1 {
		t.Fatalf("fragments=%d, want 1", st.User.TicketFragments)
	}
}

func TestLoginBonusSameDayNoOp(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-30"
	st.User.LoginStreak = 3
	fragments := st.User.TicketFragments

	res := e.CheckLoginBonus(st)
	if res.IsNewDay {
		t.Fatalf("same day should not be a new day")
	}
	if res.RewardType != RewardNone {
		t.Fatalf("reward_type=%q, want none", res.RewardType)
	}
	if st.User.LoginStreak != 3 || st.User.TicketFragments != fragments {
		t.Fatalf("same-day login mutated state")
	}
}

func TestLoginBonusConsecutiveDay(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-29"
	st.User.LoginStreak = 3

	res := e.CheckLoginBonus(st)
	if res.Streak != 4 {
		t.Fatalf("streak=%d, want 4", res.Streak)
	}
	if st.Stats.MaxLoginStreak != 4 {
		t.Fatalf("max_login_streak=%d, want 4", st.Stats.MaxLoginStreak)
	}
}

func TestLoginBonusGapResetsStreak(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-20"
	st.User.LoginStreak = 9
	st.Stats.MaxLoginStreak = 9

	res := e.CheckLoginBonus(st)
	if res.Streak != 1 {
		t.Fatalf("streak=%d after 10-day gap, want 1", res.Streak)
	}
	if st.Stats.MaxLoginStreak != 9 {
		t.Fatalf("max_login_streak=%d, want 9 preserved", st.Stats.MaxLoginStreak)
	}
}

func TestLoginBonusUnparseableDateResets(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "not-a-date"
	st.User.LoginStreak = 5

	res := e.CheckLoginBonus(st)
	if !res.IsNewDay || res.Streak != 1 {
		t.Fatalf("unparseable last_login: new_day=%v streak=%d, want true/1", res.IsNewDay, res.Streak)
	}
}

func TestLoginBonusStreakTicket(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-29"
	st.User.LoginStreak = 6
	fragments := st.User.TicketFragments

	res := e.CheckLoginBonus(st)
	if res.RewardType != RewardTicket {
		t.Fatalf("reward_type=%q on streak 7, want ticket", res.RewardType)
	}
	if st.User.Tickets != 2 {
		t.Fatalf("tickets=%d, want 2", st.User.Tickets)
	}
	if st.User.TicketFragments != fragments {
		t.Fatalf("streak ticket should not touch fragments")
	}
}

func TestLoginBonusFragmentConversion(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-29"
	st.User.LoginStreak = 1
	st.User.TicketFragments = 6

	res := e.CheckLoginBonus(st)
	if res.RewardType != RewardFragment {
		t.Fatalf("reward_type=%q, want fragment", res.RewardType)
	}
	if st.User.TicketFragments != 0 {
		t.Fatalf("fragments=%d after conversion, want 0", st.User.TicketFragments)
	}
	if st.User.Tickets != 2 {
		t.Fatalf("tickets=%d after conversion, want 2", st.User.Tickets)
	}
}

func TestLoginBonusResetsMissions(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.User.LastLogin = "2026-08-29"
	st.Daily.Date = "2026-08-29"
	st.Daily.Progress = map[string]int{"commands_10": 7}
	st.Daily.Completed = []string{"gacha_1"}
	st.Daily.Claimed = []string{"gacha_1"}

	e.CheckLoginBonus(st)
	if st.Daily.Date != "2026-08-30" {
		t.Fatalf("daily date=%q, want today", st.Daily.Date)
	}
	if st.Daily.Progress["commands_10"] != 0 {
		t.Fatalf("progress survived daily reset")
	}
	if len(st.Daily.Completed) != 0 || len(st.Daily.Claimed) != 0 {
		t.Fatalf("completed/claimed survived daily reset")
	}
}
