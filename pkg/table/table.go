// Package table serializes commands against a single spades hand and runs
// the simulated seats. Exactly one command mutates the game at a time; AI
// turns are queued on a timer after each accepted transition and re-check
// the game state when they fire, so a turn scheduled for a hand that has
// since moved on (or been redealt) is silently discarded.
package table

import (
	"log"
	"sync"
	"time"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
	"github.com/cardtable/spades/pkg/game/spades/player"
	"github.com/google/uuid"
)

// Listener is notified after each accepted transition. Callbacks run with
// the table lock held; implementations must not call back into the table.
type Listener interface {
	HandleBidsConfirmed(snap spades.Snapshot)
	HandleCardPlayed(snap spades.Snapshot, seat int, card cards.Card)
	HandleTrickCompleted(snap spades.Snapshot, trick cards.Cards, winner int)
	HandleYourTurn(snap spades.Snapshot)
	HandleHandFinished(snap spades.Snapshot)
}

type UnimplementedListener struct{}

func (UnimplementedListener) HandleBidsConfirmed(spades.Snapshot)                    {}
func (UnimplementedListener) HandleCardPlayed(spades.Snapshot, int, cards.Card)      {}
func (UnimplementedListener) HandleTrickCompleted(spades.Snapshot, cards.Cards, int) {}
func (UnimplementedListener) HandleYourTurn(spades.Snapshot)                         {}
func (UnimplementedListener) HandleHandFinished(spades.Snapshot)                     {}

type Config struct {
	// Strategy per seat. A nil seat is driven by commands (the human).
	Seats [cards.NumPlayers]player.Strategy
	// Cosmetic pacing before each simulated action.
	Delay    time.Duration
	Listener Listener
}

type Table struct {
	id       string
	seats    [cards.NumPlayers]player.Strategy
	delay    time.Duration
	listener Listener

	mu      sync.Mutex // Mutex for all data below
	game    *spades.Game
	handSeq int // bumped on each deal; scheduled actions for older hands no-op
}

func New(cfg Config) *Table {
	listener := cfg.Listener
	if listener == nil {
		listener = UnimplementedListener{}
	}
	t := &Table{
		id:       uuid.NewString(),
		seats:    cfg.Seats,
		delay:    cfg.Delay,
		listener: listener,
		game:     spades.NewGame(),
	}
	return t
}

func (t *Table) Id() string {
	return t.id
}

func (t *Table) Snapshot() spades.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Snapshot()
}

// StartNewHand discards the current hand and deals a fresh one. Any AI turn
// still pending for the old hand will see a stale sequence number and drop.
func (t *Table) StartNewHand() spades.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handSeq++
	snap := t.game.StartNewHand()
	log.Printf("table %s: new hand dealt", t.id)
	t.scheduleNextLocked(snap)
	return snap
}

// ConfirmBid submits the human seat's bid.
func (t *Table) ConfirmBid(bid int) (spades.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap, err := t.game.ConfirmBid(bid)
	if err != nil {
		return snap, err
	}
	t.listener.HandleBidsConfirmed(snap)
	t.scheduleNextLocked(snap)
	return snap, nil
}

// PlayCard submits a play for a human-driven seat.
func (t *Table) PlayCard(seat int, card cards.Card) (spades.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.game.Snapshot()
	snap, err := t.game.PlayCard(seat, card)
	if err != nil {
		return snap, err
	}
	t.reportPlayLocked(prev, snap, seat, card)
	t.scheduleNextLocked(snap)
	return snap, nil
}

func (t *Table) reportPlayLocked(prev, next spades.Snapshot, seat int, card cards.Card) {
	t.listener.HandleCardPlayed(next, seat, card)
	if next.TrickNumber > prev.TrickNumber {
		t.listener.HandleTrickCompleted(next, next.LastTrick, next.LastTrickWinner)
	}
}

// Queues whatever action the new state calls for. Caller holds mu.
func (t *Table) scheduleNextLocked(snap spades.Snapshot) {
	seq := t.handSeq
	switch snap.Stage {
	case spades.Bidding:
		// A human seat 0 bids via ConfirmBid; nothing to schedule.
		if t.seats[spades.South] != nil {
			t.schedule(func() { t.runSimulatedBid(seq) })
		}
	case spades.Playing:
		if t.seats[snap.Turn] != nil {
			seat := snap.Turn
			t.schedule(func() { t.runSimulatedTurn(seq, seat) })
		} else {
			t.listener.HandleYourTurn(snap)
		}
	case spades.HandEnd:
		t.listener.HandleHandFinished(snap)
	}
}

func (t *Table) schedule(run func()) {
	timer := time.NewTimer(t.delay)
	go func() {
		<-timer.C
		run()
	}()
}

func (t *Table) runSimulatedBid(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.handSeq {
		return
	}
	snap := t.game.Snapshot()
	if snap.Stage != spades.Bidding || t.seats[spades.South] == nil {
		return
	}
	bid := spades.BidHand(snap.Hands[spades.South])
	next, err := t.game.ConfirmBid(bid)
	if err != nil {
		return
	}
	t.listener.HandleBidsConfirmed(next)
	t.scheduleNextLocked(next)
}

func (t *Table) runSimulatedTurn(seq, seat int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// The game may have moved on since this turn was scheduled.
	if seq != t.handSeq {
		return
	}
	snap := t.game.Snapshot()
	if snap.Stage != spades.Playing || snap.Turn != seat {
		return
	}
	strategy := t.seats[seat]
	if strategy == nil {
		return
	}
	card := strategy.ChooseCard(snap)
	next, err := t.game.PlayCard(seat, card)
	if err != nil {
		log.Fatalf("Strategy for %s chose invalid card %s\nerror: %v\nsnapshot: %v",
			spades.SeatNames[seat], card, err, snap)
	}
	t.reportPlayLocked(snap, next, seat, card)
	t.scheduleNextLocked(next)
}
