// Package config provides YAML-based rules configuration for the
// klondike platform.
package config

import (
	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

// GameConfig is the on-disk shape of the recognized game options.
type GameConfig struct {
	Rules RulesConfig `yaml:"rules"`
}

// RulesConfig mirrors klondike.Rules in YAML form.
type RulesConfig struct {
	// DrawCount is the number of cards turned over per stock draw: 1 or 3.
	DrawCount int `yaml:"draw_count"`
	// EmptyTableau is "king" (standard) or "any".
	EmptyTableau string `yaml:"empty_tableau"`
	// FoundationToTableau permits moving foundation tops back to the
	// tableau.
	FoundationToTableau bool `yaml:"foundation_to_tableau"`
}

// ToRules converts the YAML form into engine rules, validating the
// option domains.
func (c GameConfig) ToRules() (klondike.Rules, error) {
	rules := klondike.Rules{
		DrawCount:           c.Rules.DrawCount,
		EmptyTableau:        klondike.EmptyTableauRule(c.Rules.EmptyTableau),
		FoundationToTableau: c.Rules.FoundationToTableau,
	}
	if err := rules.Validate(); err != nil {
		return klondike.Rules{}, err
	}
	return rules, nil
}
