package tables

// Static game content: tuning rules, level curve, gacha rates and pools,
// shop catalog, daily missions and achievements. Everything the engine
// consumes is defined here; nothing in this package mutates at runtime.

type Rarity string

const (
	RaritySSR Rarity = "SSR"
	RaritySR  Rarity = "SR"
	RarityR   Rarity = "R"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RaritySSR, RaritySR, RarityR:
		return true
	default:
		return false
	}
}

// MissionType is the event stream a daily mission counts.
type MissionType string

const (
	MissionCommands MissionType = "commands"
	MissionFeed     MissionType = "feed"
	MissionGacha    MissionType = "gacha"
)

func (m MissionType) IsValid() bool {
	switch m {
	case MissionCommands, MissionFeed, MissionGacha:
		return true
	default:
		return false
	}
}

// StatSource is the lifetime counter an achievement is measured against.
type StatSource string

const (
	SourceTotalCommands   StatSource = "total_commands"
	SourceLevel           StatSource = "level"
	SourceTotalGacha      StatSource = "total_gacha"
	SourceSSRCount        StatSource = "ssr_count"
	SourceLoginStreak     StatSource = "login_streak"
	SourceCollectionCount StatSource = "collection_count"
)

type ItemKind string

const (
	KindSkin  ItemKind = "skin"
	KindTitle ItemKind = "title"
	KindTip   ItemKind = "tip"
	KindJunk  ItemKind = "junk"
)

type Item struct {
	ID   string
	Name string
	Kind ItemKind
}

// Reward is a bundle of wallet grants. All fields are additive.
type Reward struct {
	Food            int `yaml:"food"`
	Tickets         int `yaml:"tickets"`
	TicketFragments int `yaml:"ticket_fragments"`
	Coins           int `yaml:"coins"`
	ExpBoost        int `yaml:"exp_boost"`
}

type ShopItem struct {
	ID          string
	Name        string
	Description string
	Price       int
	Reward      Reward
}

type Mission struct {
	ID          string
	Name        string
	Description string
	Type        MissionType
	Target      int
	Reward      Reward
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Source      StatSource
	Target      int
	Reward      Reward
}

type RarityRate struct {
	Rarity Rarity
	Rate   float64
}

// Rules are the scalar tunables of the progression engine.
type Rules struct {
	DropChance          float64
	GuaranteedDropEvery int
	HungerDecay         float64
	FeedHungerGain      float64
	FeedExpGain         int
	FragmentsPerTicket  int
	TicketStreakEvery   int
	CoinEveryCommands   int
}

type Tables struct {
	Rules Rules

	// LevelThresholds maps level → cumulative exp required to hold it.
	// LevelTicketBonus is sparse: only milestone levels grant tickets.
	LevelThresholds  map[int]int
	LevelTicketBonus map[int]int

	// GachaRates is walked in declared order; rates must sum to 1.
	GachaRates []RarityRate
	GachaPools map[Rarity][]Item

	Shop         []ShopItem
	Missions     []Mission
	Achievements []Achievement

	// Builtins are ownable items that exist outside the gacha pools,
	// currently just the starter skin.
	Builtins []Item
}

// MaxLevel is the highest level with a defined threshold; the pet never
// advances past it.
func (t *Tables) MaxLevel() int {
	max := 1
	for lvl := range t.LevelThresholds {
		if lvl > max {
			max = lvl
		}
	}
	return max
}

// ItemByID looks an item up across the builtins and every gacha pool.
func (t *Tables) ItemByID(id string) (Item, bool) {
	for _, it := range t.Builtins {
		if it.ID == id {
			return it, true
		}
	}
	for _, rr := range t.GachaRates {
		for _, it := range t.GachaPools[rr.Rarity] {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// ItemRarity reports which pool an item belongs to. Builtins report the
// lowest rarity.
func (t *Tables) ItemRarity(id string) Rarity {
	for _, rr := range t.GachaRates {
		for _, it := range t.GachaPools[rr.Rarity] {
			if it.ID == id {
				return rr.Rarity
			}
		}
	}
	return RarityR
}

func (t *Tables) MissionByID(id string) (Mission, bool) {
	for _, m := range t.Missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

func (t *Tables) ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range t.Shop {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Default returns the built-in content set.
func Default() *Tables {
	return &Tables{
		Rules: Rules{
			DropChance:          0.05,
			GuaranteedDropEvery: 30,
			HungerDecay:         0.5,
			FeedHungerGain:      20,
			FeedExpGain:         10,
			FragmentsPerTicket:  7,
			TicketStreakEvery:   7,
			CoinEveryCommands:   10,
		},

		LevelThresholds: map[int]int{
			1: 0, 2: 50, 3: 120, 4: 200, 5: 300,
			6: 420, 7: 560, 8: 720, 9: 900, 10: 1100,
			11: 1350, 12: 1650, 13: 2000, 14: 2400, 15: 2850,
			16: 3350, 17: 3900, 18: 4500, 19: 5150, 20: 5850,
		},
		LevelTicketBonus: map[int]int{
			5: 1, 10: 2, 15: 2, 20: 3,
		},

		GachaRates: []RarityRate{
			{Rarity: RaritySSR, Rate: 0.01},
			{Rarity: RaritySR, Rate: 0.09},
			{Rarity: RarityR, Rate: 0.90},
		},
		GachaPools: map[Rarity][]Item{
			RaritySSR: {
				{ID: "skin_golden_dragon", Name: "Golden Dragon Skin", Kind: KindSkin},
				{ID: "skin_cyber_cat", Name: "Cyber Cat Skin", Kind: KindSkin},
				{ID: "title_legendary", Name: "Legendary Commander", Kind: KindTitle},
			},
			RaritySR: {
				{ID: "skin_blue_cat", Name: "Blue Cat Skin", Kind: KindSkin},
				{ID: "skin_red_cat", Name: "Red Cat Skin", Kind: KindSkin},
				{ID: "skin_green_cat", Name: "Green Cat Skin", Kind: KindSkin},
				{ID: "skin_purple_cat", Name: "Purple Cat Skin", Kind: KindSkin},
			},
			RarityR: {
				{ID: "tip_git", Name: "Tip: git stash parks work in progress", Kind: KindTip},
				{ID: "tip_vim", Name: "Tip: :wq writes and quits", Kind: KindTip},
				{ID: "tip_grep", Name: "Tip: grep -r searches recursively", Kind: KindTip},
				{ID: "tip_find", Name: "Tip: find . -name locates files", Kind: KindTip},
				{ID: "stone", Name: "A dull stone", Kind: KindJunk},
			},
		},

		Shop: []ShopItem{
			{
				ID: "food_pack_small", Name: "Food Pack (S)",
				Description: "Food x5", Price: 50,
				Reward: Reward{Food: 5},
			},
			{
				ID: "food_pack_large", Name: "Food Pack (L)",
				Description: "Food x20", Price: 180,
				Reward: Reward{Food: 20},
			},
			{
				ID: "ticket_single", Name: "Gacha Ticket",
				Description: "Ticket x1", Price: 100,
				Reward: Reward{Tickets: 1},
			},
			{
				ID: "exp_boost", Name: "EXP Boost",
				Description: "Double exp for the next 10 feeds", Price: 150,
				Reward: Reward{ExpBoost: 10},
			},
		},

		Missions: []Mission{
			{
				ID: "commands_10", Name: "Run 10 commands",
				Description: "Run 10 shell commands",
				Type:        MissionCommands, Target: 10,
				Reward: Reward{Coins: 20},
			},
			{
				ID: "commands_50", Name: "Run 50 commands",
				Description: "Run 50 shell commands",
				Type:        MissionCommands, Target: 50,
				Reward: Reward{Coins: 50},
			},
			{
				ID: "feed_3", Name: "Feed x3",
				Description: "Feed your pet 3 times",
				Type:        MissionFeed, Target: 3,
				Reward: Reward{Coins: 30},
			},
			{
				ID: "gacha_1", Name: "Pull the gacha",
				Description: "Pull the gacha once",
				Type:        MissionGacha, Target: 1,
				Reward: Reward{TicketFragments: 2},
			},
		},

		Achievements: []Achievement{
			{ID: "first_command", Name: "First Steps", Description: "Run your first command",
				Source: SourceTotalCommands, Target: 1, Reward: Reward{Coins: 10}},
			{ID: "commands_100", Name: "Apprentice Commander", Description: "Run 100 commands",
				Source: SourceTotalCommands, Target: 100, Reward: Reward{Coins: 50}},
			{ID: "commands_500", Name: "Adept Commander", Description: "Run 500 commands",
				Source: SourceTotalCommands, Target: 500, Reward: Reward{Coins: 100, Tickets: 1}},
			{ID: "commands_1000", Name: "Master Commander", Description: "Run 1000 commands",
				Source: SourceTotalCommands, Target: 1000, Reward: Reward{Coins: 200, Tickets: 2}},
			{ID: "commands_5000", Name: "Legendary Commander", Description: "Run 5000 commands",
				Source: SourceTotalCommands, Target: 5000, Reward: Reward{Coins: 500, Tickets: 5}},

			{ID: "level_5", Name: "Growing Up", Description: "Reach pet level 5",
				Source: SourceLevel, Target: 5, Reward: Reward{Coins: 30}},
			{ID: "level_10", Name: "Full-Fledged", Description: "Reach pet level 10",
				Source: SourceLevel, Target: 10, Reward: Reward{Coins: 100, Tickets: 1}},
			{ID: "level_20", Name: "Virtuoso", Description: "Reach pet level 20",
				Source: SourceLevel, Target: 20, Reward: Reward{Coins: 300, Tickets: 3}},

			{ID: "first_gacha", Name: "Beginner's Luck", Description: "Pull the gacha once",
				Source: SourceTotalGacha, Target: 1, Reward: Reward{Coins: 20}},
			{ID: "gacha_10", Name: "Gacha Enthusiast", Description: "Pull the gacha 10 times",
				Source: SourceTotalGacha, Target: 10, Reward: Reward{Coins: 50}},
			{ID: "first_ssr", Name: "Jackpot!", Description: "Pull an SSR",
				Source: SourceSSRCount, Target: 1, Reward: Reward{Coins: 100}},

			{ID: "login_7", Name: "Weekly Player", Description: "Log in 7 days in a row",
				Source: SourceLoginStreak, Target: 7, Reward: Reward{Coins: 50, Tickets: 1}},
			{ID: "login_30", Name: "Monthly Player", Description: "Log in 30 days in a row",
				Source: SourceLoginStreak, Target: 30, Reward: Reward{Coins: 200, Tickets: 3}},

			{ID: "collection_5", Name: "Collector", Description: "Collect 5 different items",
				Source: SourceCollectionCount, Target: 5, Reward: Reward{Coins: 50}},
			{ID: "collection_10", Name: "Avid Collector", Description: "Collect 10 different items",
				Source: SourceCollectionCount, Target: 10, Reward: Reward{Coins: 150, Tickets: 2}},
		},

		Builtins: []Item{
			{ID: "default_cat", Name: "Default Cat", Kind: KindSkin},
		},
	}
}
