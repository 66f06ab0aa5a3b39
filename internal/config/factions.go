package config

type FactionsConfig struct {
	Factions []Faction `yaml:"factions" validate:"required,min=1,dive"`
}

type Faction struct {
	Code string `yaml:"code" json:"code" validate:"required"`
	Name string `yaml:"name" json:"name"`
	Note string `yaml:"note" json:"note,omitempty"`
}

// DisplayName falls back to the code when no name is set.
func (f Faction) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Code
}
