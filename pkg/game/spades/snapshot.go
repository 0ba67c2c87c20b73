package spades

import (
	"fmt"
	"strings"

	"github.com/cardtable/spades/pkg/cards"
)

// Snapshot is a read-only view of the hand taken after a state transition.
// All slices are copies; mutating a snapshot never affects the game.
type Snapshot struct {
	Stage        Stage
	Turn         int
	TrickNumber  int
	SpadesBroken bool

	Hands     [cards.NumPlayers]cards.Cards
	Bids      [cards.NumPlayers]int
	TricksWon [cards.NumPlayers]int

	TrickLeader int
	Trick       cards.Cards // current trick in play order
	LegalPlays  cards.Cards // for the seat on turn, empty unless Playing

	// Previous completed trick, for display. Winner is -1 before the
	// first trick resolves.
	LastTrick       cards.Cards
	LastTrickWinner int
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Stage:           g.stage,
		Turn:            g.turn,
		TrickNumber:     g.trickNumber,
		SpadesBroken:    g.spadesBroken,
		Bids:            g.bids,
		TricksWon:       g.tricksWon,
		TrickLeader:     g.trick.Leader(),
		Trick:           g.trick.Cards(),
		LastTrick:       g.lastTrick.Copy(),
		LastTrickWinner: g.lastTrickWinner,
	}
	for seat, h := range g.hands {
		s.Hands[seat] = h.Copy()
	}
	if g.stage == Playing {
		s.LegalPlays = LegalPlays(g.hands[g.turn], g.trick, g.spadesBroken)
	}
	return s
}

// LedSuit of the current trick. Returns false before the lead play.
func (s Snapshot) LedSuit() (cards.Suit, bool) {
	if len(s.Trick) == 0 {
		return cards.Clubs, false
	}
	return s.Trick[0].Suit, true
}

func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stage: %s  trick %d  turn: %s\n", s.Stage, s.TrickNumber, SeatNames[s.Turn])
	for seat := range s.Hands {
		fmt.Fprintf(&sb, "%5s  bid %2d  won %2d  %s\n",
			SeatNames[seat], s.Bids[seat], s.TricksWon[seat], s.Hands[seat].HandString())
	}
	if len(s.Trick) > 0 {
		fmt.Fprintf(&sb, "trick (led by %s): %s\n", SeatNames[s.TrickLeader], s.Trick)
	}
	return sb.String()
}
