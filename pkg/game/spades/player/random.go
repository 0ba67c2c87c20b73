package player

import (
	"math/rand"
	"time"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
)

// Plays a random (legal) card.

func NewRandomStrategy() Strategy {
	return &randomStrategy{}
}

type randomStrategy struct{}

func init() {
	rand.Seed(time.Now().UnixNano())
}

func (randomStrategy) ChooseCard(snap spades.Snapshot) cards.Card {
	legalPlays := snap.LegalPlays
	return legalPlays[rand.Intn(len(legalPlays))]
}
