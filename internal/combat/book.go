package combat

import (
	"strings"

	"hexbalance/internal/config"
	"hexbalance/internal/hex"
)

const (
	defaultStrength = 4
	defaultMovement = 2
	baseExpansion   = "base"
)

type UnitTemplate struct {
	ID        string
	Name      string
	Faction   string
	Class     Class
	Subtype   string
	Expansion string
	Hero      bool
	Strength  int
	Movement  int
	Range     int
	Cost      int
	Traits    []string
}

// ArmyRules decide what a faction fields.
type ArmyRules struct {
	Expansion       string `json:"expansion"`
	HeroCost        int    `json:"hero_cost"`
	DoubleBelowCost int    `json:"double_below_cost"`
}

func DefaultArmyRules() ArmyRules {
	return ArmyRules{Expansion: baseExpansion, HeroCost: 6, DoubleBelowCost: 4}
}

func (r ArmyRules) WithDefaults() ArmyRules {
	d := DefaultArmyRules()
	if r.Expansion == "" {
		r.Expansion = d.Expansion
	}
	if r.HeroCost <= 0 {
		r.HeroCost = d.HeroCost
	}
	if r.DoubleBelowCost <= 0 {
		r.DoubleBelowCost = d.DoubleBelowCost
	}
	return r
}

// RulesFromConfig maps sim.yaml onto match and army rules, defaults filled.
func RulesFromConfig(sc *config.SimConfig) (Rules, ArmyRules) {
	if sc == nil {
		return DefaultRules(), DefaultArmyRules()
	}
	r := Rules{
		Grid:        hex.Grid{Width: sc.Grid.Width, Height: sc.Grid.Height},
		Activations: sc.Rules.Activations,
		MedalsToWin: sc.Rules.MedalsToWin,
		MaxTurns:    sc.Rules.MaxTurns,
	}
	ar := ArmyRules{
		Expansion:       sc.Roster.Expansion,
		HeroCost:        sc.Roster.HeroCost,
		DoubleBelowCost: sc.Roster.DoubleBelowCost,
	}
	return r.WithDefaults(), ar.WithDefaults()
}

// IsHero applies the hero rule: a "Hero" trait (exact case), a cost at or
// above the threshold, or the hero subtype.
func IsHero(traits []string, cost int, subtype string, heroCost int) bool {
	for _, t := range traits {
		if t == "Hero" {
			return true
		}
	}
	return cost >= heroCost || strings.EqualFold(subtype, "hero")
}

type UnitBook struct {
	rules     ArmyRules
	byFaction map[string][]UnitTemplate
	heroes    map[string]UnitTemplate
}

func NewUnitBook(cfg *config.UnitsConfig, rules ArmyRules) *UnitBook {
	ub := &UnitBook{
		rules:     rules.WithDefaults(),
		byFaction: map[string][]UnitTemplate{},
		heroes:    map[string]UnitTemplate{},
	}
	if cfg == nil {
		return ub
	}
	for _, d := range cfg.Units {
		tpl := templateFrom(d, ub.rules.HeroCost)
		ub.byFaction[tpl.Faction] = append(ub.byFaction[tpl.Faction], tpl)
		if _, ok := ub.heroes[tpl.Faction]; !ok && strings.EqualFold(tpl.Subtype, "hero") {
			ub.heroes[tpl.Faction] = tpl
		}
	}
	return ub
}

func templateFrom(d config.UnitDef, heroCost int) UnitTemplate {
	class, _ := ParseClass(d.Type)
	tpl := UnitTemplate{
		ID:        d.ID,
		Name:      d.Name,
		Faction:   d.Faction,
		Class:     class,
		Subtype:   d.Subtype,
		Expansion: d.Expansion,
		Strength:  d.Strength,
		Movement:  d.Movement,
		Range:     d.Range,
		Cost:      d.Cost,
		Traits:    append([]string(nil), d.Traits...),
	}
	if tpl.Subtype == "" {
		tpl.Subtype = "unit"
	}
	if tpl.Expansion == "" {
		tpl.Expansion = baseExpansion
	}
	if tpl.Strength <= 0 {
		tpl.Strength = defaultStrength
	}
	if tpl.Movement <= 0 {
		tpl.Movement = defaultMovement
	}
	// catalogs write melee as range 0
	if tpl.Range < 1 {
		tpl.Range = 1
	}
	tpl.Hero = IsHero(tpl.Traits, tpl.Cost, tpl.Subtype, heroCost)
	if tpl.Hero {
		tpl.Class = Elite
	}
	return tpl
}

func (ub *UnitBook) Rules() ArmyRules { return ub.rules }

func (ub *UnitBook) Templates(faction string) []UnitTemplate {
	if ub == nil {
		return nil
	}
	return ub.byFaction[faction]
}

// Hero returns the first hero-subtype unit of the faction, any expansion.
func (ub *UnitBook) Hero(faction string) (UnitTemplate, bool) {
	if ub == nil {
		return UnitTemplate{}, false
	}
	h, ok := ub.heroes[faction]
	return h, ok
}
