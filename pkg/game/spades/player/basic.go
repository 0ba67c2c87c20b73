package player

import (
	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
)

// BasicStrategy implements simple card conservation: lead high off-suit,
// follow low, trump low when void.

func NewBasicStrategy() Strategy {
	return &basicStrategy{}
}

type basicStrategy struct{}

func (basicStrategy) ChooseCard(snap spades.Snapshot) cards.Card {
	legalPlays := snap.LegalPlays

	// Play the only valid card.
	if len(legalPlays) == 1 {
		return legalPlays[0]
	}

	ledSuit, hasLead := snap.LedSuit()
	if !hasLead {
		return chooseLeadCard(legalPlays)
	}

	// Follow the led suit with our lowest if we can.
	followers := legalPlays.FilterBySuit(ledSuit)
	if len(followers) > 0 {
		return followers.Lowest()
	}
	// Void. Trump with our lowest spade if we have one.
	trumps := legalPlays.FilterBySuit(cards.Spades)
	if len(trumps) > 0 {
		return trumps.Lowest()
	}
	// Dump the lowest legal card.
	return legalPlays.Lowest()
}

func chooseLeadCard(legalPlays cards.Cards) cards.Card {
	// Lead the highest non-spade; keep trumps back for later.
	nonSpades := legalPlays.NonSpades()
	if len(nonSpades) > 0 {
		return nonSpades.Highest()
	}
	return legalPlays.Highest()
}
