package storage

// State is the whole persisted game document. One instance is loaded per
// invocation, mutated in place by the engine, and written back as a unit.
type State struct {
	User         User     `json:"user"`
	Stats        Stats    `json:"stats"`
	Pet          Pet      `json:"pet"`
	Collection   []string `json:"collection"`
	Achievements []string `json:"achievements"`
	Daily        Daily    `json:"daily"`
}

// User holds the wallet and login tracking.
type User struct {
	LastLogin       string `json:"last_login,omitempty"`
	LoginStreak     int    `json:"login_streak"`
	Food            int    `json:"food"`
	TicketFragments int    `json:"ticket_fragments"`
	Tickets         int    `json:"tickets"`
	Coins           int    `json:"coins"`
	ExpBoost        int    `json:"exp_boost"`
}

// Stats are lifetime counters. All are monotonic except CommandsSinceDrop,
// which resets to zero whenever a drop occurs.
type Stats struct {
	TotalCommands     int `json:"total_commands"`
	CommandsSinceDrop int `json:"commands_since_drop"`
	TotalFeed         int `json:"total_feed"`
	TotalGacha        int `json:"total_gacha"`
	SSRCount          int `json:"ssr_count"`
	MaxLoginStreak    int `json:"max_login_streak"`
}

type Pet struct {
	Name   string  `json:"name"`
	SkinID string  `json:"skin_id"`
	Level  int     `json:"level"`
	Exp    int     `json:"exp"`
	Hunger float64 `json:"hunger"`
}

// Daily is the per-day mission ledger. Progress resets on date change;
// Completed and Claimed accumulate across the day.
type Daily struct {
	Date      string         `json:"date,omitempty"`
	Progress  map[string]int `json:"progress"`
	Completed []string       `json:"completed"`
	Claimed   []string       `json:"claimed"`
}

const (
	DefaultPetName = "Termi"
	DefaultSkinID  = "default_cat"
)

// DefaultState returns a fresh first-run document: starter food and one
// gacha ticket, pet at level 1 with full hunger, collection seeded with
// the default skin.
func DefaultState() *State {
	return &State{
		User: User{
			Food:    5,
			Tickets: 1,
		},
		Pet: Pet{
			Name:   DefaultPetName,
			SkinID: DefaultSkinID,
			Level:  1,
			Hunger: 100,
		},
		Collection:   []string{DefaultSkinID},
		Achievements: []string{},
		Daily: Daily{
			Progress:  map[string]int{},
			Completed: []string{},
			Claimed:   []string{},
		},
	}
}

// normalize repairs a loaded document so the engine can rely on its
// invariants: non-nil containers, hunger within [0,100], level at least 1,
// and the equipped skin always present in the collection.
func (s *State) normalize() {
	if s.Collection == nil {
		s.Collection = []string{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.Daily.Progress == nil {
		s.Daily.Progress = map[string]int{}
	}
	if s.Daily.Completed == nil {
		s.Daily.Completed = []string{}
	}
	if s.Daily.Claimed == nil {
		s.Daily.Claimed = []string{}
	}

	if s.Pet.Name == "" {
		s.Pet.Name = DefaultPetName
	}
	if s.Pet.Level < 1 {
		s.Pet.Level = 1
	}
	if s.Pet.Hunger < 0 {
		s.Pet.Hunger = 0
	}
	if s.Pet.Hunger > 100 {
		s.Pet.Hunger = 100
	}
	if s.Pet.SkinID == "" {
		s.Pet.SkinID = DefaultSkinID
	}

	owned := false
	for _, id := range s.Collection {
		if id == s.Pet.SkinID {
			owned = true
			break
		}
	}
	if !owned {
		s.Collection = append(s.Collection, s.Pet.SkinID)
	}
}
