package player

import (
	"testing"

	"github.com/cardtable/spades/pkg/cards"
	"github.com/cardtable/spades/pkg/game/spades"
)

func snapWithTrick(legal cards.Cards, trick cards.Cards) spades.Snapshot {
	return spades.Snapshot{
		Stage:      spades.Playing,
		Trick:      trick,
		LegalPlays: legal,
	}
}

func TestBasicStrategyChooseCard(t *testing.T) {
	tests := []struct {
		name  string
		legal cards.Cards
		trick cards.Cards
		want  cards.Card
	}{
		{
			name:  "only legal card",
			legal: cards.Cards{cards.C7d},
			trick: cards.Cards{cards.C2d},
			want:  cards.C7d,
		},
		{
			name:  "leading, highest non-spade",
			legal: cards.Cards{cards.C4h, cards.Ckd, cards.C2c},
			trick: cards.Cards{},
			want:  cards.Ckd,
		},
		{
			name:  "leading with only spades, highest spade",
			legal: cards.Cards{cards.C3s, cards.Cts, cards.C8s},
			trick: cards.Cards{},
			want:  cards.Cts,
		},
		{
			name:  "following, lowest of led suit",
			legal: cards.Cards{cards.C5h, cards.Cjh, cards.C9h},
			trick: cards.Cards{cards.C7h, cards.C8h},
			want:  cards.C5h,
		},
		{
			name:  "void, lowest spade",
			legal: cards.Cards{cards.C2c, cards.C9s, cards.C4s, cards.Ckd},
			trick: cards.Cards{cards.Cqh},
			want:  cards.C4s,
		},
		{
			name:  "void with no spades, lowest legal",
			legal: cards.Cards{cards.C8c, cards.C3d, cards.Ckd},
			trick: cards.Cards{cards.Cqh},
			want:  cards.C3d,
		},
	}
	s := NewBasicStrategy()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.ChooseCard(snapWithTrick(tc.legal, tc.trick))
			if got != tc.want {
				t.Errorf("ChooseCard(legal=%s trick=%s)=%s, want %s", tc.legal, tc.trick, got, tc.want)
			}
		})
	}
}

// Every strategy must pick from the legal set on every turn of a full hand.
func TestStrategiesChooseLegalCards(t *testing.T) {
	strategies := map[string]Strategy{
		"basic":  NewBasicStrategy(),
		"random": NewRandomStrategy(),
	}
	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				g := spades.NewGame()
				snap, err := g.ConfirmBid(spades.BidHand(g.Snapshot().Hands[spades.South]))
				if err != nil {
					t.Fatalf("ConfirmBid: %v", err)
				}
				for snap.Stage == spades.Playing {
					card := s.ChooseCard(snap)
					if !snap.LegalPlays.ContainsCard(card) {
						t.Fatalf("%s chose %s, not in legal set %s", name, card, snap.LegalPlays)
					}
					snap, err = g.PlayCard(snap.Turn, card)
					if err != nil {
						t.Fatalf("engine rejected %s's card %s: %v", name, card, err)
					}
				}
			}
		})
	}
}

func TestNewStrategyFromFlag(t *testing.T) {
	for _, valid := range []string{"", "basic", "random"} {
		if _, err := NewStrategyFromFlag(valid); err != nil {
			t.Errorf("NewStrategyFromFlag(%q)=%v, want nil", valid, err)
		}
	}
	if _, err := NewStrategyFromFlag("clairvoyant"); err == nil {
		t.Errorf("NewStrategyFromFlag(clairvoyant)=nil, want error")
	}
}
