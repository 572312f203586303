package game

import (
	"errors"
	"testing"

	"shellgotchi/internal/tables"
)

func TestResetDailyIdempotentSameDay(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()

	e.ResetDaily(st)
	e.UpdateMissionProgress(st, tables.MissionFeed, 2)

	e.ResetDaily(st)
	if st.Daily.Progress["feed_3"] != 2 {
		t.Fatalf("same-day reset cleared progress")
	}
}

func TestUpdateProgressCompletesOnce(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	e.ResetDaily(st)

	newly := e.UpdateMissionProgress(st, tables.MissionFeed, 3)
	if len(newly) != 1 || newly[0].ID != "feed_3" {
		t.Fatalf("newly completed = %v, want [feed_3]", newly)
	}

	newly = e.UpdateMissionProgress(st, tables.MissionFeed, 1)
	if len(newly) != 0 {
		t.Fatalf("already-completed mission reported again: %v", newly)
	}
}

func TestUpdateProgressIgnoresOtherTypes(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	e.ResetDaily(st)

	e.UpdateMissionProgress(st, tables.MissionGacha, 1)
	if st.Daily.Progress["feed_3"] != 0 {
		t.Fatalf("gacha progress leaked into feed mission")
	}
}

func TestClaimMissionFlow(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	e.ResetDaily(st)

	if _, err := e.ClaimMission(st, "no_such_mission"); err == nil {
		t.Fatalf("expected error for unknown mission")
	} else {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("unknown mission error = %v, want NotFoundError", err)
		}
	}

	if _, err := e.ClaimMission(st, "feed_3"); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("claim before completion = %v, want ErrNotCompleted", err)
	}

	e.UpdateMissionProgress(st, tables.MissionFeed, 3)
	res, err := e.ClaimMission(st, "feed_3")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Reward.Coins != 30 || st.User.Coins != 30 {
		t.Fatalf("coins=%d, want 30", st.User.Coins)
	}

	if _, err := e.ClaimMission(st, "feed_3"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("double claim = %v, want ErrAlreadyClaimed", err)
	}
	if st.User.Coins != 30 {
		t.Fatalf("double claim paid out: coins=%d", st.User.Coins)
	}
}

func TestMissionStatusClampsProgress(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	e.ResetDaily(st)
	e.UpdateMissionProgress(st, tables.MissionFeed, 10)

	for _, v := range e.MissionStatus(st) {
		if v.Mission.ID != "feed_3" {
			continue
		}
		if v.Progress != v.Mission.Target {
			t.Fatalf("progress=%d, want clamped to %d", v.Progress, v.Mission.Target)
		}
		if !v.Completed || v.Claimed {
			t.Fatalf("status flags completed=%v claimed=%v, want true/false", v.Completed, v.Claimed)
		}
		return
	}
	t.Fatalf("feed_3 missing from status view")
}
