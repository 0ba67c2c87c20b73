package table

import (
	"errors"
	"testing"
	"time"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
	"github.com/cardtable/spades/pkg/game/spades/player"
)

type captureListener struct {
	UnimplementedListener
	yourTurn chan spades.Snapshot
	finished chan spades.Snapshot
}

func newCaptureListener() *captureListener {
	return &captureListener{
		yourTurn: make(chan spades.Snapshot, 16),
		finished: make(chan spades.Snapshot, 1),
	}
}

func (l *captureListener) HandleYourTurn(snap spades.Snapshot) {
	l.yourTurn <- snap
}

func (l *captureListener) HandleHandFinished(snap spades.Snapshot) {
	l.finished <- snap
}

func awaitSnapshot(t *testing.T, ch chan spades.Snapshot, what string) spades.Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		return spades.Snapshot{}
	}
}

func allSimulated() [cards.NumPlayers]player.Strategy {
	s := player.NewBasicStrategy()
	return [cards.NumPlayers]player.Strategy{s, s, s, s}
}

func withHumanSouth() [cards.NumPlayers]player.Strategy {
	s := player.NewBasicStrategy()
	return [cards.NumPlayers]player.Strategy{nil, s, s, s}
}

func TestAllSimulatedHandRunsToCompletion(t *testing.T) {
	listener := newCaptureListener()
	tbl := New(Config{Seats: allSimulated(), Listener: listener})
	tbl.StartNewHand()
	snap := awaitSnapshot(t, listener.finished, "hand end")
	if snap.Stage != spades.HandEnd {
		t.Errorf("Stage=%s, want %s", snap.Stage, spades.HandEnd)
	}
	total := 0
	for _, won := range snap.TricksWon {
		total += won
	}
	if total != cards.HandSize {
		t.Errorf("sum(TricksWon)=%d, want %d", total, cards.HandSize)
	}
}

func TestHumanSeatPlaysAHand(t *testing.T) {
	listener := newCaptureListener()
	tbl := New(Config{Seats: withHumanSouth(), Listener: listener})
	start := tbl.StartNewHand()
	if _, err := tbl.ConfirmBid(spades.BidHand(start.Hands[spades.South])); err != nil {
		t.Fatalf("ConfirmBid: %v", err)
	}
	for {
		select {
		case snap := <-listener.yourTurn:
			if _, err := tbl.PlayCard(spades.South, snap.LegalPlays[0]); err != nil {
				t.Fatalf("PlayCard(%s): %v", snap.LegalPlays[0], err)
			}
		case snap := <-listener.finished:
			if snap.Stage != spades.HandEnd {
				t.Errorf("Stage=%s, want %s", snap.Stage, spades.HandEnd)
			}
			if len(snap.Hands[spades.South]) != 0 {
				t.Errorf("human still holds %s", snap.Hands[spades.South])
			}
			return
		case <-time.After(10 * time.Second):
			t.Fatal("timed out waiting for a turn")
		}
	}
}

// A scheduled simulated turn whose hand has since been redealt, or whose
// seat is no longer on turn, must not touch the game.
func TestStaleSimulatedTurnIsDiscarded(t *testing.T) {
	listener := newCaptureListener()
	// A long delay keeps timers from firing during the test.
	tbl := New(Config{Seats: withHumanSouth(), Delay: time.Hour, Listener: listener})
	tbl.StartNewHand()
	if _, err := tbl.ConfirmBid(3); err != nil {
		t.Fatalf("ConfirmBid: %v", err)
	}
	before := tbl.Snapshot()
	if before.Turn != spades.South {
		t.Fatalf("Turn=%d, want the human", before.Turn)
	}

	// Wrong turn: West's turn was never scheduled, but fire it anyway.
	tbl.runSimulatedTurn(tbl.handSeq, spades.West)
	// Stale hand: sequence number from before a redeal.
	tbl.runSimulatedTurn(tbl.handSeq-1, spades.South)
	// Stale bid: bidding is already over.
	tbl.runSimulatedBid(tbl.handSeq)

	after := tbl.Snapshot()
	if after.Stage != before.Stage || after.Turn != before.Turn || after.TrickNumber != before.TrickNumber {
		t.Errorf("stale actions mutated state: %v -> %v", before, after)
	}
	for seat := range before.Hands {
		if !after.Hands[seat].Equals(before.Hands[seat]) {
			t.Errorf("stale actions mutated hand %d: %s -> %s", seat, before.Hands[seat], after.Hands[seat])
		}
	}
}

func TestRedealInvalidatesPendingTurns(t *testing.T) {
	listener := newCaptureListener()
	tbl := New(Config{Seats: withHumanSouth(), Delay: time.Hour, Listener: listener})
	tbl.StartNewHand()
	tbl.ConfirmBid(3)
	staleSeq := tbl.handSeq

	tbl.StartNewHand()
	before := tbl.Snapshot()
	tbl.runSimulatedTurn(staleSeq, spades.West)
	after := tbl.Snapshot()
	if after.Stage != spades.Bidding || after.Stage != before.Stage {
		t.Errorf("stale turn mutated redealt hand: stage %s", after.Stage)
	}
}

func TestCommandRejectionsPassThrough(t *testing.T) {
	tbl := New(Config{Seats: withHumanSouth(), Delay: time.Hour})
	snap := tbl.StartNewHand()
	if _, err := tbl.PlayCard(spades.South, snap.Hands[spades.South][0]); !errors.Is(err, spades.ErrWrongStage) {
		t.Errorf("PlayCard during bidding=%v, want ErrWrongStage", err)
	}
	if _, err := tbl.ConfirmBid(20); !errors.Is(err, spades.ErrBadBid) {
		t.Errorf("ConfirmBid(20)=%v, want ErrBadBid", err)
	}
	if _, err := tbl.ConfirmBid(3); err != nil {
		t.Fatalf("ConfirmBid(3)=%v, want nil", err)
	}
	if _, err := tbl.ConfirmBid(3); !errors.Is(err, spades.ErrWrongStage) {
		t.Errorf("second ConfirmBid=%v, want ErrWrongStage", err)
	}
	if _, err := tbl.PlayCard(spades.West, cards.C2c); !errors.Is(err, spades.ErrOutOfTurn) {
		t.Errorf("PlayCard out of turn=%v, want ErrOutOfTurn", err)
	}
}

func TestTablesAreIndependent(t *testing.T) {
	t1 := New(Config{Seats: withHumanSouth(), Delay: time.Hour})
	t2 := New(Config{Seats: withHumanSouth(), Delay: time.Hour})
	if t1.Id() == t2.Id() {
		t.Errorf("two tables share id %s", t1.Id())
	}
	t1.StartNewHand()
	t1.ConfirmBid(3)
	if got := t2.Snapshot().Stage; got != spades.Bidding {
		t.Errorf("table 2 stage=%s after table 1 commands, want %s", got, spades.Bidding)
	}
}
