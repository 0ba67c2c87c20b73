package player

import (
	"flag"
	"fmt"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
)

// Strategy picks a card for a simulated seat. The returned card must be a
// member of the snapshot's legal set; anything else is a defect in the
// strategy, not a condition the engine tolerates.
type Strategy interface {
	ChooseCard(spades.Snapshot) cards.Card
}

// Creates a flag for specifying the strategy type to use.
func AddStrategyFlag(target *string, name string) {
	enumFlag(target, name, []string{"basic", "random"}, "Type of card strategy to use")
}

// Constructs a strategy from a strategy flag value.
func NewStrategyFromFlag(strategyType string) (Strategy, error) {
	switch strategyType {
	case "", "basic":
		return NewBasicStrategy(), nil
	case "random":
		return NewRandomStrategy(), nil
	default:
		return nil, fmt.Errorf("invalid strategy type %s", strategyType)
	}
}

func enumFlag(target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	flag.Func(name, usageWithValues, func(flagValue string) error {
		for _, allowedValue := range safelist {
			if flagValue == allowedValue {
				*target = flagValue
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", safelist)
	})
}
