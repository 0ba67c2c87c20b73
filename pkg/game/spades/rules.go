package spades

import (
	"github.com/cardtable/spades/pkg/cards"
)

// LegalPlays returns the cards in hand that seat may play on the trick.
// It never mutates its inputs, and for a non-empty hand the result is
// never empty: a player can always legally play something.
func LegalPlays(hand cards.Cards, trick *Trick, spadesBroken bool) cards.Cards {
	return hand.Filter(func(c cards.Card) bool {
		return isValidPlay(c, trick, hand, spadesBroken)
	})
}

func isValidPlay(card cards.Card, trick *Trick, hand cards.Cards, spadesBroken bool) bool {
	ledSuit, hasLead := trick.LedSuit()
	if !hasLead {
		// Leading. Any non-spade is fine. Spades may only be led once
		// broken, or when the hand holds nothing else.
		if card.Suit != cards.Spades {
			return true
		}
		if spadesBroken {
			return true
		}
		return len(hand.NonSpades()) == 0
	}
	// Must follow the led suit when possible.
	if card.Suit == ledSuit {
		return true
	}
	return !hand.ContainsSuit(ledSuit)
}
