package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

//go:embed defaults/klondike.yaml
var defaultKlondikeYAML []byte

// DefaultConfig returns the hardcoded fallback matching the embedded
// default YAML.
func DefaultConfig() GameConfig {
	rules := klondike.DefaultRules()
	return GameConfig{
		Rules: RulesConfig{
			DrawCount:           rules.DrawCount,
			EmptyTableau:        string(rules.EmptyTableau),
			FoundationToTableau: rules.FoundationToTableau,
		},
	}
}
