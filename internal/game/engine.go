package game

import (
	"time"

	"shellgotchi/internal/storage"
	"shellgotchi/internal/tables"
)

// Engine holds the static tables plus the two injectable inputs the rules
// depend on: randomness and the clock. State is never stored here; every
// method takes the document it mutates.
type Engine struct {
	Tables *tables.Tables
	RNG    RandomSource
	Now    func() time.Time
}

func New(t *tables.Tables) *Engine {
	return &Engine{
		Tables: t,
		RNG:    DefaultRNG(),
		Now:    time.Now,
	}
}

const dateLayout = "2006-01-02"

func (e *Engine) today() string {
	return e.Now().Format(dateLayout)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// applyReward credits every component of a reward bundle to the wallet.
// Fragments granted here do not trigger ticket conversion; that only
// happens during login-bonus resolution.
func applyReward(u *storage.User, r tables.Reward) {
	u.Food += r.Food
	u.Tickets += r.Tickets
	u.TicketFragments += r.TicketFragments
	u.Coins += r.Coins
	u.ExpBoost += r.ExpBoost
}
