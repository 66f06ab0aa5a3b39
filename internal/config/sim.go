package config

// SimConfig holds board, rule and roster settings. Zero values mean
// "use the built-in default".
type SimConfig struct {
	Grid    GridDef   `yaml:"grid"`
	Rules   RulesDef  `yaml:"rules"`
	Roster  RosterDef `yaml:"roster"`
	Exclude []string  `yaml:"exclude"`
}

type GridDef struct {
	Width  int `yaml:"width" validate:"omitempty,min=2"`
	Height int `yaml:"height" validate:"omitempty,min=4"`
}

type RulesDef struct {
	Activations int `yaml:"activations" validate:"gte=0"`
	MedalsToWin int `yaml:"medals_to_win" validate:"gte=0"`
	MaxTurns    int `yaml:"max_turns" validate:"gte=0"`
}

type RosterDef struct {
	Expansion       string `yaml:"expansion"`
	HeroCost        int    `yaml:"hero_cost" validate:"gte=0"`
	DoubleBelowCost int    `yaml:"double_below_cost" validate:"gte=0"`
}

// DefaultExclude lists the factions that never take part in balance runs.
var DefaultExclude = []string{"neutral", "mercenaries", "titans", "inferno"}
