package game

import "testing"

func TestFeedPetBaseGain(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 50

	res := e.FeedPet(st)
	if res.ExpGained != e.Tables.Rules.FeedExpGain {
		t.Fatalf("exp_gained=%d, want %d", res.ExpGained, e.Tables.Rules.FeedExpGain)
	}
	if res.Boosted {
		t.Fatalf("feed without boost reported boosted")
	}
	if st.Pet.Exp != e.Tables.Rules.FeedExpGain {
		t.Fatalf("pet exp=%d, want %d", st.Pet.Exp, e.Tables.Rules.FeedExpGain)
	}
	if st.User.Food != 4 {
		t.Fatalf("food=%d, want 4", st.User.Food)
	}
	if st.Pet.Hunger != 70 {
		t.Fatalf("hunger=%v, want 70", st.Pet.Hunger)
	}
	if st.Stats.TotalFeed != 1 {
		t.Fatalf("total_feed=%d, want 1", st.Stats.TotalFeed)
	}
}

func TestFeedPetHungerCap(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 95

	e.FeedPet(st)
	if st.Pet.Hunger != 100 {
		t.Fatalf("hunger=%v, want cap at 100", st.Pet.Hunger)
	}
}

func TestFeedPetBoostDoublesAndDecrements(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 50
	st.User.ExpBoost = 2

	res := e.FeedPet(st)
	if res.ExpGained != 2*e.Tables.Rules.FeedExpGain {
		t.Fatalf("boosted exp_gained=%d, want %d", res.ExpGained, 2*e.Tables.Rules.FeedExpGain)
	}
	if !res.Boosted {
		t.Fatalf("expected boosted result")
	}
	if st.User.ExpBoost != 1 {
		t.Fatalf("exp_boost=%d, want 1", st.User.ExpBoost)
	}
}

func TestFeedPetExpGrantedAfterHungerRaise(t *testing.T) {
	// Hunger is raised before the exp gate, so feeding a starving pet
	// still grants exp.
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 0

	res := e.FeedPet(st)
	if st.Pet.Exp != res.ExpGained {
		t.Fatalf("pet exp=%d, want %d", st.Pet.Exp, res.ExpGained)
	}
}

func TestFeedPetSingleLevelStep(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 50
	// One feed lands exp at 130, past the thresholds for both level 2
	// (50) and level 3 (120). Only one step may be taken.
	st.Pet.Exp = 120

	res := e.FeedPet(st)
	if !res.LevelUp {
		t.Fatalf("expected level up")
	}
	if res.NewLevel != 2 || st.Pet.Level != 2 {
		t.Fatalf("level=%d, want exactly 2", st.Pet.Level)
	}
}

func TestFeedPetMilestoneTickets(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 50
	st.Pet.Level = 4
	st.Pet.Exp = 295 // threshold for level 5 is 300

	res := e.FeedPet(st)
	if !res.LevelUp || res.NewLevel != 5 {
		t.Fatalf("expected level up to 5, got level %d", res.NewLevel)
	}
	if res.TicketsEarned != 1 {
		t.Fatalf("tickets_earned=%d, want 1 (level 5 bonus)", res.TicketsEarned)
	}
	if st.User.Tickets != 2 {
		t.Fatalf("tickets=%d, want 2", st.User.Tickets)
	}
}

func TestFeedPetNoLevelPastCap(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()
	st.Pet.Hunger = 50
	st.Pet.Level = e.Tables.MaxLevel()
	st.Pet.Exp = 99999

	res := e.FeedPet(st)
	if res.LevelUp {
		t.Fatalf("level up past the cap")
	}
	if st.Pet.Level != e.Tables.MaxLevel() {
		t.Fatalf("level=%d, want cap %d", st.Pet.Level, e.Tables.MaxLevel())
	}
}

func TestExpToNextLevel(t *testing.T) {
	e := newTestEngine(t)
	st := newTestState()

	if got := e.ExpToNextLevel(&st.Pet); got != 50 {
		t.Fatalf("exp to level 2 = %d, want 50", got)
	}
	st.Pet.Level = e.Tables.MaxLevel()
	if got := e.ExpToNextLevel(&st.Pet); got != 0 {
		t.Fatalf("exp to next at cap = %d, want 0", got)
	}
}
