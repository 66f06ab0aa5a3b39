package config

type UnitsConfig struct {
	Units []UnitDef `yaml:"units" validate:"required,min=1,dive"`
}

type UnitDef struct {
	ID        string   `yaml:"id" validate:"required"`
	Name      string   `yaml:"name" validate:"required"`
	Faction   string   `yaml:"faction" validate:"required"`
	Type      string   `yaml:"type" validate:"omitempty,oneof=light medium heavy elite"`
	Subtype   string   `yaml:"subtype"`
	Expansion string   `yaml:"expansion"`
	Strength  int      `yaml:"strength" validate:"gte=0"`
	Movement  int      `yaml:"movement" validate:"gte=0"`
	Range     int      `yaml:"range" validate:"gte=0"`
	Cost      int      `yaml:"cost" validate:"gte=0"`
	Traits    []string `yaml:"traits"`
	Special   string   `yaml:"special"`
}
