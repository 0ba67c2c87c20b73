package spades

import (
	"math"

	"github.com/cardtable/spades/pkg/cards"
)

const (
	MinBid = 0
	MaxBid = 13
)

// BidHand estimates how many tricks a hand should win. High spades count a
// full trick each, off-suit aces and kings a fraction. The result is a
// plausible bid in [1,10], computed deterministically from the hand; it
// makes no claim of being optimal.
func BidHand(hand cards.Cards) int {
	est := 0.0
	for _, c := range hand {
		switch {
		case c.Suit == cards.Spades && c.Value >= cards.Jack:
			est += 1.0
		case c.Value == cards.Ace:
			est += 0.6
		case c.Value == cards.King:
			est += 0.3
		}
	}
	bid := int(math.Round(est))
	if bid < 1 {
		bid = 1
	}
	if bid > 10 {
		bid = 10
	}
	return bid
}
