package klondike

import "fmt"

// EmptyTableauRule controls which cards an empty tableau column accepts.
type EmptyTableauRule string

const (
	// EmptyTableauKing is the standard Klondike rule: Kings only.
	EmptyTableauKing EmptyTableauRule = "king"
	// EmptyTableauAny relaxes the rule to any card or run.
	EmptyTableauAny EmptyTableauRule = "any"
)

// Rules holds the recognized game options. The zero value is not valid;
// use DefaultRules and override fields as needed.
type Rules struct {
	// DrawCount is how many cards a stock draw turns over: 1 or 3.
	DrawCount int
	// EmptyTableau selects the empty-column acceptance rule.
	EmptyTableau EmptyTableauRule
	// FoundationToTableau permits moving a foundation top card back to
	// a tableau column, as many Klondike variants do.
	FoundationToTableau bool
}

// DefaultRules returns the standard single-draw Klondike rule set.
func DefaultRules() Rules {
	return Rules{
		DrawCount:           1,
		EmptyTableau:        EmptyTableauKing,
		FoundationToTableau: true,
	}
}

// Validate checks that every option is within its recognized domain.
func (r Rules) Validate() error {
	if r.DrawCount != 1 && r.DrawCount != 3 {
		return fmt.Errorf("klondike: draw count must be 1 or 3, got %d", r.DrawCount)
	}
	if r.EmptyTableau != EmptyTableauKing && r.EmptyTableau != EmptyTableauAny {
		return fmt.Errorf("klondike: empty tableau rule must be %q or %q, got %q",
			EmptyTableauKing, EmptyTableauAny, r.EmptyTableau)
	}
	return nil
}
