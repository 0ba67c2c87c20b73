// Solo plays one human seat (South) against three simulated seats at a
// terminal. The engine only tracks the current hand; running score, bags
// and point totals across hands are computed here.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
	"github.com/cardtable/spades/pkg/game/spades/player"
	"github.com/cardtable/spades/pkg/table"
)

var (
	delay        = flag.Duration("delay", 800*time.Millisecond, "Pacing delay before each simulated play")
	strategyType = "basic"
)

func init() {
	player.AddStrategyFlag(&strategyType, "type")
	// Engine logs are noise at the terminal.
	log.SetOutput(io.Discard)
}

func main() {
	flag.Parse()
	if err := runGame(); err != nil {
		fmt.Println(err)
	}
}

type eventKind int8

const (
	evBidsConfirmed eventKind = iota
	evCardPlayed
	evTrickCompleted
	evYourTurn
	evHandFinished
)

type event struct {
	kind   eventKind
	snap   spades.Snapshot
	seat   int
	card   cards.Card
	trick  cards.Cards
	winner int
}

// channelListener forwards table notifications to the terminal loop.
type channelListener struct {
	table.UnimplementedListener
	events chan event
}

func (l *channelListener) HandleBidsConfirmed(snap spades.Snapshot) {
	l.events <- event{kind: evBidsConfirmed, snap: snap}
}
func (l *channelListener) HandleCardPlayed(snap spades.Snapshot, seat int, card cards.Card) {
	l.events <- event{kind: evCardPlayed, snap: snap, seat: seat, card: card}
}
func (l *channelListener) HandleTrickCompleted(snap spades.Snapshot, trick cards.Cards, winner int) {
	l.events <- event{kind: evTrickCompleted, snap: snap, trick: trick, winner: winner}
}
func (l *channelListener) HandleYourTurn(snap spades.Snapshot) {
	l.events <- event{kind: evYourTurn, snap: snap}
}
func (l *channelListener) HandleHandFinished(snap spades.Snapshot) {
	l.events <- event{kind: evHandFinished, snap: snap}
}

func runGame() error {
	strategy, err := player.NewStrategyFromFlag(strategyType)
	if err != nil {
		return err
	}
	listener := &channelListener{events: make(chan event, 32)}
	t := table.New(table.Config{
		Seats:    [cards.NumPlayers]player.Strategy{nil, strategy, strategy, strategy},
		Delay:    *delay,
		Listener: listener,
	})

	var score scoreboard
	for {
		snap := t.StartNewHand()
		if err := bidHand(t, snap); err != nil {
			return err
		}
		final, err := playHand(t, listener.events)
		if err != nil {
			return err
		}
		score.recordHand(final)
		fmt.Println(score)
		if !promptYesNo("Play another hand?") {
			return nil
		}
	}
}

func bidHand(t *table.Table, snap spades.Snapshot) error {
	fmt.Printf("\nYour hand: %s\n", snap.Hands[spades.South].HandString())
	suggested := spades.BidHand(snap.Hands[spades.South])
	for {
		fmt.Printf("Enter bid (%d-%d) [%d]: ", spades.MinBid, spades.MaxBid, suggested)
		var in string
		fmt.Scanln(&in)
		bid := suggested
		if in != "" {
			if _, err := fmt.Sscanf(in, "%d", &bid); err != nil {
				fmt.Printf("Invalid bid %q, try again\n", in)
				continue
			}
		}
		if _, err := t.ConfirmBid(bid); err != nil {
			fmt.Printf("Can't bid %d. Try again\n", bid)
			continue
		}
		return nil
	}
}

func playHand(t *table.Table, events chan event) (spades.Snapshot, error) {
	for ev := range events {
		switch ev.kind {
		case evBidsConfirmed:
			fmt.Printf("Bids: %s\n", bidString(ev.snap))
		case evCardPlayed:
			if ev.seat != spades.South {
				fmt.Printf("%5s plays %s\n", spades.SeatNames[ev.seat], ev.card)
			}
		case evTrickCompleted:
			fmt.Printf("Trick: %s won by %s\n\n", ev.trick, spades.SeatNames[ev.winner])
		case evYourTurn:
			card := chooseCard(ev.snap)
			if _, err := t.PlayCard(spades.South, card); err != nil {
				fmt.Printf("Can't play card %s. Try again\n", card)
				// Re-prompt off the unchanged state.
				events <- event{kind: evYourTurn, snap: t.Snapshot()}
			}
		case evHandFinished:
			return ev.snap, nil
		}
	}
	return spades.Snapshot{}, fmt.Errorf("event stream closed")
}

func chooseCard(snap spades.Snapshot) cards.Card {
	recommended := player.NewBasicStrategy().ChooseCard(snap)
	for {
		fmt.Println(showGame(snap))
		fmt.Printf("Enter card to play [%s]: ", recommended)
		var cs string
		fmt.Scanln(&cs)
		if cs == "" {
			return recommended
		}
		card, err := cards.ParseCard(cs)
		if err == nil {
			return card
		}
		fmt.Printf("Invalid card %s, try again\n", cs)
	}
}

func showGame(snap spades.Snapshot) string {
	var sb strings.Builder
	if len(snap.Trick) > 0 {
		sb.WriteString(fmt.Sprintf("Trick so far (led by %s): %s\n", spades.SeatNames[snap.TrickLeader], snap.Trick))
	}
	sb.WriteString(fmt.Sprintf("Your hand: %s\n", snap.Hands[spades.South].HandString()))
	sb.WriteString(fmt.Sprintf("Legal plays: %s", snap.LegalPlays))
	return sb.String()
}

func bidString(snap spades.Snapshot) string {
	parts := []string{}
	for seat, bid := range snap.Bids {
		parts = append(parts, fmt.Sprintf("%s %d", spades.SeatNames[seat], bid))
	}
	return strings.Join(parts, ", ")
}

func promptYesNo(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	var in string
	fmt.Scanln(&in)
	return strings.EqualFold(in, "y") || strings.EqualFold(in, "yes")
}

// scoreboard accumulates partnership points across hands: 10 per bid trick
// plus 1 per bag when the bid is made, -10 per bid trick when set, and a
// 100 point penalty each time a side collects 10 bags.
type scoreboard struct {
	points [2]int
	bags   [2]int
	hands  int
}

var sideNames = [2]string{"South/North", "West/East"}

func (s *scoreboard) recordHand(snap spades.Snapshot) {
	s.hands++
	for side := 0; side < 2; side++ {
		bid := snap.Bids[side] + snap.Bids[side+2]
		won := snap.TricksWon[side] + snap.TricksWon[side+2]
		if won >= bid {
			s.points[side] += 10*bid + (won - bid)
			s.bags[side] += won - bid
			if s.bags[side] >= 10 {
				s.points[side] -= 100
				s.bags[side] -= 10
			}
		} else {
			s.points[side] -= 10 * bid
		}
	}
}

func (s scoreboard) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("After %d hand(s):\n", s.hands))
	for side, name := range sideNames {
		sb.WriteString(fmt.Sprintf("  %-11s %4d points, %d bags\n", name, s.points[side], s.bags[side]))
	}
	return sb.String()
}
