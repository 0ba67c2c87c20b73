package cards

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

const NumPlayers = 4
const HandSize = 13

type Cards []Card

func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Values))
	for _, s := range Suits {
		for _, v := range Values {
			d = append(d, Card{v, s})
		}
	}
	return d
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsCard(c Card) bool {
	return cs.Contains(func(oc Card) bool { return oc == c })
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Remove(c Card) Cards {
	for i, f := range cs {
		if f == c {
			copy(cs[i:], cs[i+1:])
			return cs[:len(cs)-1]
		}
	}
	return cs
}

// Sorts into canonical display order (suit groups, descending value).
// The multiset of cards is unchanged.
func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].Before(cs[j])
	})
}

func (cs Cards) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	rand.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

// Returns a card that is better than all other cards according to the better func (is c1 better than c2).
// Empty input is a programming error.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) Card {
	if len(cs) == 0 {
		panic("can't get extreme of empty list of cards")
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func (cs Cards) Lowest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Value < c2.Value })
}

func (cs Cards) Highest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Value > c2.Value })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		for _, s := range suits {
			if c.Suit == s {
				return true
			}
		}
		return false
	})
}

func (cs Cards) NonSpades() Cards {
	return cs.FilterBySuit(Clubs, Diamonds, Hearts)
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	return strings.Join(cs.Strings(), " ")
}

func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for _, s := range Suits {
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			suitStrings = append(suitStrings, scs.String())
		}
	}
	return strings.Join(suitStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Deal shuffles a fresh deck and splits it into 4 hands of 13 in seating
// order: cards 0-12 to seat 0, 13-25 to seat 1, and so on. The hands
// partition the deck exactly.
func Deal() [NumPlayers]Cards {
	d := MakeDeck()
	d.Shuffle()
	var hs [NumPlayers]Cards
	for i := range hs {
		h := d[i*HandSize : (i+1)*HandSize].Copy()
		h.Sort()
		hs[i] = h
	}
	return hs
}
