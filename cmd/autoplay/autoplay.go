// Autoplay runs unattended hands with all four seats simulated and prints
// per-seat results. Useful for soaking the sequencer and comparing
// strategies.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
	"github.com/cardtable/spades/pkg/game/spades/player"
	"github.com/cardtable/spades/pkg/table"
)

var (
	numHands     = flag.Int("hands", 100, "Number of hands to play")
	verbose      = flag.Bool("verbose", false, "Print engine logs during the session")
	strategyType = "basic"
)

func init() {
	player.AddStrategyFlag(&strategyType, "type")
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if err := runHands(); err != nil {
		fmt.Println(err)
	}
}

type doneListener struct {
	table.UnimplementedListener
	done chan spades.Snapshot
}

func (l *doneListener) HandleHandFinished(snap spades.Snapshot) {
	l.done <- snap
}

func runHands() error {
	strategy, err := player.NewStrategyFromFlag(strategyType)
	if err != nil {
		return err
	}
	listener := &doneListener{done: make(chan spades.Snapshot, 1)}
	t := table.New(table.Config{
		Seats:    [cards.NumPlayers]player.Strategy{strategy, strategy, strategy, strategy},
		Listener: listener,
	})

	var made, set [cards.NumPlayers]int
	var tricks [cards.NumPlayers]int
	for i := 0; i < *numHands; i++ {
		t.StartNewHand()
		snap := <-listener.done
		for seat := range snap.Bids {
			tricks[seat] += snap.TricksWon[seat]
			if snap.TricksWon[seat] >= snap.Bids[seat] {
				made[seat]++
			} else {
				set[seat]++
			}
		}
	}

	fmt.Printf("%d hands, %s strategy\n", *numHands, strategyType)
	for seat, name := range spades.SeatNames {
		fmt.Printf("%5s: made %3d  set %3d  avg tricks %.2f\n",
			name, made[seat], set[seat], float64(tricks[seat])/float64(*numHands))
	}
	return nil
}
