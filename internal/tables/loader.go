package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional on-disk tuning file. Only the knobs people
// actually ask to tweak are exposed; content tables stay built in.
// Absent fields keep their defaults.
type Overrides struct {
	Rules *struct {
		DropChance          *float64 `yaml:"drop_chance"`
		GuaranteedDropEvery *int     `yaml:"guaranteed_drop_every"`
		HungerDecay         *float64 `yaml:"hunger_decay"`
		FeedHungerGain      *float64 `yaml:"feed_hunger_gain"`
		FeedExpGain         *int     `yaml:"feed_exp_gain"`
		FragmentsPerTicket  *int     `yaml:"fragments_per_ticket"`
		TicketStreakEvery   *int     `yaml:"ticket_streak_every"`
		CoinEveryCommands   *int     `yaml:"coin_every_commands"`
	} `yaml:"rules"`
	GachaRates []struct {
		Rarity Rarity  `yaml:"rarity"`
		Rate   float64 `yaml:"rate"`
	} `yaml:"gacha_rates"`
}

// Load returns the default tables, with overrides from the YAML file at
// path merged in when it exists. A missing file is not an error.
func Load(path string) (*Tables, error) {
	t := Default()
	if path == "" {
		return t, validate(t)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, validate(t)
		}
		return nil, fmt.Errorf("read tables override: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(b, &ov); err != nil {
		return nil, fmt.Errorf("parse tables override: %w", err)
	}
	applyOverrides(t, &ov)
	return t, validate(t)
}

func applyOverrides(t *Tables, ov *Overrides) {
	if r := ov.Rules; r != nil {
		if r.DropChance != nil {
			t.Rules.DropChance = *r.DropChance
		}
		if r.GuaranteedDropEvery != nil {
			t.Rules.GuaranteedDropEvery = *r.GuaranteedDropEvery
		}
		if r.HungerDecay != nil {
			t.Rules.HungerDecay = *r.HungerDecay
		}
		if r.FeedHungerGain != nil {
			t.Rules.FeedHungerGain = *r.FeedHungerGain
		}
		if r.FeedExpGain != nil {
			t.Rules.FeedExpGain = *r.FeedExpGain
		}
		if r.FragmentsPerTicket != nil {
			t.Rules.FragmentsPerTicket = *r.FragmentsPerTicket
		}
		if r.TicketStreakEvery != nil {
			t.Rules.TicketStreakEvery = *r.TicketStreakEvery
		}
		if r.CoinEveryCommands != nil {
			t.Rules.CoinEveryCommands = *r.CoinEveryCommands
		}
	}

	if len(ov.GachaRates) > 0 {
		rates := make([]RarityRate, 0, len(ov.GachaRates))
		for _, rr := range ov.GachaRates {
			rates = append(rates, RarityRate{Rarity: rr.Rarity, Rate: rr.Rate})
		}
		t.GachaRates = rates
	}
}
