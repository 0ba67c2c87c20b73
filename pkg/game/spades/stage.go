package spades

// Stage of a single 13-trick hand. A fresh hand always begins in Bidding.
type Stage int8

const (
	Bidding Stage = iota
	Playing
	HandEnd
)

func (s Stage) String() string {
	switch s {
	case Bidding:
		return "bidding"
	case Playing:
		return "playing"
	case HandEnd:
		return "hand end"
	}
	panic("Unknown Stage")
}
