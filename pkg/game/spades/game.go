package spades

import (
	"log"

	"github.com/cardtable/spades/pkg/cards"
	"golang.org/x/exp/slices"
)

// Seats. South is the human chair by convention; partnerships are
// South+North vs West+East.
const (
	South = 0
	West  = 1
	North = 2
	East  = 3
)

var SeatNames = [cards.NumPlayers]string{"South", "West", "North", "East"}

// Game holds the state of one 13-trick spades hand and sequences it through
// bidding, playing and hand end. It is the single source of truth; callers
// only ever see copies via Snapshot. Methods are not safe for concurrent
// use; serialization is the caller's job (see pkg/table).
type Game struct {
	stage           Stage
	hands           [cards.NumPlayers]cards.Cards
	bids            [cards.NumPlayers]int
	tricksWon       [cards.NumPlayers]int
	spadesBroken    bool
	turn            int
	trick           *Trick
	trickNumber     int
	lastTrick       cards.Cards
	lastTrickWinner int
}

// NewGame deals a fresh hand, ready for bidding.
func NewGame() *Game {
	g := &Game{}
	g.reset()
	return g
}

func (g *Game) reset() {
	hands := cards.Deal()
	for seat := range g.hands {
		g.hands[seat] = hands[seat]
		g.bids[seat] = 0
		g.tricksWon[seat] = 0
	}
	g.stage = Bidding
	g.spadesBroken = false
	g.turn = South
	g.trick = newTrick(South)
	g.trickNumber = 0
	g.lastTrick = nil
	g.lastTrickWinner = -1
}

// StartNewHand discards all state of the current hand, shuffles and deals
// again. Nothing from the previous hand is retained.
func (g *Game) StartNewHand() Snapshot {
	g.reset()
	return g.Snapshot()
}

// ConfirmBid fixes the human's bid, computes bids for the three simulated
// seats and moves the hand into play. The human leads the first trick.
func (g *Game) ConfirmBid(bid int) (Snapshot, error) {
	if g.stage != Bidding {
		return g.Snapshot(), ErrWrongStage
	}
	if bid < MinBid || bid > MaxBid {
		return g.Snapshot(), ErrBadBid
	}
	g.bids[South] = bid
	for seat := West; seat <= East; seat++ {
		g.bids[seat] = BidHand(g.hands[seat])
	}
	g.stage = Playing
	return g.Snapshot(), nil
}

// PlayCard applies seat's card to the current trick. The play is rejected,
// with no state change, unless the hand is in play, it is seat's turn, and
// the card is in seat's legal set. An accepted play advances the turn to
// the next seat, or resolves the trick and hands the lead to its winner.
func (g *Game) PlayCard(seat int, card cards.Card) (Snapshot, error) {
	if g.stage != Playing {
		return g.Snapshot(), ErrWrongStage
	}
	if seat != g.turn {
		return g.Snapshot(), ErrOutOfTurn
	}
	hand := g.hands[seat]
	if !slices.Contains(hand, card) {
		return g.Snapshot(), ErrIllegalMove
	}
	if !isValidPlay(card, g.trick, hand, g.spadesBroken) {
		return g.Snapshot(), ErrIllegalMove
	}

	if g.trick.play(seat, card) {
		g.spadesBroken = true
	}
	g.hands[seat] = hand.Remove(card)

	if !g.trick.IsComplete() {
		g.turn = (seat + 1) % cards.NumPlayers
		return g.Snapshot(), nil
	}
	winner := g.trick.Winner()
	log.Printf("trick %d: %s - won by %s", g.trickNumber, g.trick.Cards(), SeatNames[winner])
	g.tricksWon[winner]++
	g.lastTrick = g.trick.Cards()
	g.lastTrickWinner = winner
	g.trickNumber++
	g.trick = newTrick(winner)
	g.turn = winner
	if g.trickNumber == cards.HandSize {
		g.stage = HandEnd
	}
	return g.Snapshot(), nil
}
