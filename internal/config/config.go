package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tcwang/elemental-cards/internal/battle"
	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/constants"
	"github.com/tcwang/elemental-cards/internal/element"
)

type relationEntry struct {
	Element string   `json:"element"`
	Beats   []string `json:"beats"`
	LosesTo []string `json:"loses_to"`
}

type seedCardEntry struct {
	Name    string `json:"name"`
	HP      int    `json:"hp"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Element string `json:"element"`
	Rarity  string `json:"rarity"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// RoundCap bounds every duel. Omitted means the built-in cap.
	RoundCap *int `json:"round_cap"`
	// ElementRelations replaces the built-in advantage table entirely
	// when present.
	ElementRelations []relationEntry `json:"element_relations"`
	// SeedCards are upserted into the collection at startup.
	SeedCards []seedCardEntry `json:"seed_cards"`
}

// LoadedConfig is the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress string
	RoundCap      int
	Table         *element.Table
	SeedCards     []card.Card
}

// Default returns the configuration used when no config file exists:
// built-in advantage table, default round cap, default bind address.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: constants.DefaultServerAddress,
		RoundCap:      battle.DefaultRoundCap,
		Table:         element.DefaultTable(),
	}
}

// LoadConfig reads the configuration file at path. A missing file is
// not an error — the whole system runs on built-in defaults — but a
// present file must parse and validate.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.RoundCap != nil {
		if *rc.RoundCap < 1 {
			return nil, fmt.Errorf("config file %s: round_cap must be at least 1, got %d", path, *rc.RoundCap)
		}
		out.RoundCap = *rc.RoundCap
	}

	if len(rc.ElementRelations) > 0 {
		entries := make([]element.Entry, 0, len(rc.ElementRelations))
		seen := make(map[element.Element]struct{}, len(rc.ElementRelations))
		for _, rel := range rc.ElementRelations {
			name := strings.TrimSpace(rel.Element)
			if name == "" {
				return nil, fmt.Errorf("config file %s: element relation missing 'element'", path)
			}
			e := element.Parse(name)
			if _, dup := seen[e]; dup {
				return nil, fmt.Errorf("config file %s: duplicate element relation '%s'", path, name)
			}
			seen[e] = struct{}{}
			entries = append(entries, element.Entry{
				Element: e,
				Relation: element.Relation{
					Beats:   parseElements(rel.Beats),
					LosesTo: parseElements(rel.LosesTo),
				},
			})
		}
		out.Table = element.NewTable(entries)
	}

	for _, sc := range rc.SeedCards {
		if strings.TrimSpace(sc.Name) == "" {
			return nil, fmt.Errorf("config file %s: seed card missing 'name'", path)
		}
		out.SeedCards = append(out.SeedCards, card.New(sc.Name, sc.HP, sc.Attack, sc.Defense, sc.Element, sc.Rarity))
	}

	return out, nil
}

func parseElements(names []string) []element.Element {
	out := make([]element.Element, 0, len(names))
	for _, n := range names {
		out = append(out, element.Parse(n))
	}
	return out
}
