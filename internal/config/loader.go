package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

var validate = validator.New()

// Catalog is everything loaded from a config directory.
type Catalog struct {
	Units    *UnitsConfig
	Factions *FactionsConfig
	Sim      *SimConfig
}

func loadYAML(fs afero.Fs, path string, out any) error {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func check(name string, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return nil
}

// LoadAll reads units.yaml, factions.yaml and the optional sim.yaml from
// dir. JSON content works too since yaml.v3 accepts it.
func LoadAll(fs afero.Fs, dir string) (*Catalog, error) {
	var uc UnitsConfig
	var fc FactionsConfig
	var sc SimConfig
	if err := loadYAML(fs, filepath.Join(dir, "units.yaml"), &uc); err != nil {
		return nil, err
	}
	if err := loadYAML(fs, filepath.Join(dir, "factions.yaml"), &fc); err != nil {
		return nil, err
	}
	simPath := filepath.Join(dir, "sim.yaml")
	if ok, _ := afero.Exists(fs, simPath); ok {
		if err := loadYAML(fs, simPath, &sc); err != nil {
			return nil, err
		}
	}
	if sc.Exclude == nil {
		sc.Exclude = append([]string(nil), DefaultExclude...)
	}

	for i := range uc.Units {
		uc.Units[i].Type = strings.ToLower(uc.Units[i].Type)
	}

	if err := check("units", &uc); err != nil {
		return nil, err
	}
	if err := check("factions", &fc); err != nil {
		return nil, err
	}
	if err := check("sim", &sc); err != nil {
		return nil, err
	}

	known := map[string]bool{}
	for _, f := range fc.Factions {
		if known[f.Code] {
			return nil, fmt.Errorf("%w: duplicate faction %q", ErrInvalid, f.Code)
		}
		known[f.Code] = true
	}
	for _, u := range uc.Units {
		if !known[u.Faction] {
			return nil, fmt.Errorf("%w: unit %s: unknown faction %q", ErrInvalid, u.ID, u.Faction)
		}
	}
	return &Catalog{Units: &uc, Factions: &fc, Sim: &sc}, nil
}

// Playable returns the factions not named in the exclude list, in file order.
func (c *Catalog) Playable() []Faction {
	skip := map[string]bool{}
	for _, code := range c.Sim.Exclude {
		skip[code] = true
	}
	var out []Faction
	for _, f := range c.Factions.Factions {
		if !skip[f.Code] {
			out = append(out, f)
		}
	}
	return out
}

func (c *Catalog) Faction(code string) (Faction, bool) {
	for _, f := range c.Factions.Factions {
		if f.Code == code {
			return f, true
		}
	}
	return Faction{}, false
}
