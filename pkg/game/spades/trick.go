package spades

import (
	"github.com/cardtable/spades/pkg/cards"
)

// A Trick is one round of four plays. Plays are stored by seat offset from
// the leader, so offset 0 is always the lead card. The led suit is fixed by
// the first play and never changes for the rest of the trick.
type Trick struct {
	leader int
	plays  [cards.NumPlayers]*cards.Card
	size   int
}

func newTrick(leader int) *Trick {
	return &Trick{leader: leader}
}

func (t *Trick) Leader() int {
	return t.leader
}

func (t *Trick) Size() int {
	return t.size
}

func (t *Trick) IsComplete() bool {
	return t.size == cards.NumPlayers
}

// The suit of the lead card. Returns false if nothing has been played yet.
func (t *Trick) LedSuit() (cards.Suit, bool) {
	if t.plays[0] == nil {
		return cards.Clubs, false
	}
	return t.plays[0].Suit, true
}

// Cards in play order (offset order from the leader).
func (t *Trick) Cards() cards.Cards {
	cs := make(cards.Cards, 0, t.size)
	for _, p := range t.plays {
		if p != nil {
			cs = append(cs, *p)
		}
	}
	return cs
}

// Places seat's card at its offset from the leader and reports whether the
// play broke spades: a spade played when spades was not the led suit.
func (t *Trick) play(seat int, card cards.Card) (brokeSpades bool) {
	offset := (seat - t.leader + cards.NumPlayers) % cards.NumPlayers
	c := card
	t.plays[offset] = &c
	t.size++
	ledSuit, _ := t.LedSuit()
	return card.Suit == cards.Spades && ledSuit != cards.Spades
}

// Winner returns the seat that took a complete trick. The lead card starts
// as the winning card; a spade beats any non-spade winner, and within the
// winning suit the higher value wins. A card that is neither a spade nor of
// the led suit can never win. All 52 cards are distinct, so no ties.
func (t *Trick) Winner() int {
	if !t.IsComplete() {
		panic("winner of incomplete trick")
	}
	winOffset := 0
	winning := *t.plays[0]
	for offset := 1; offset < cards.NumPlayers; offset++ {
		c := *t.plays[offset]
		if beats(c, winning) {
			winning = c
			winOffset = offset
		}
	}
	return (t.leader + winOffset) % cards.NumPlayers
}

// Does challenger beat the current winning card? The winning card is either
// the lead card or a card that already beat it, so suits other than the
// winning card's suit and spades are irrelevant.
func beats(challenger, winning cards.Card) bool {
	if challenger.Suit == winning.Suit {
		return challenger.Value > winning.Value
	}
	return challenger.Suit == cards.Spades
}
