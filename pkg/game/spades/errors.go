package spades

import "errors"

// Rejection categories. Every rejected command leaves the hand unchanged,
// so a caller can re-render current state and prompt again.
var (
	ErrIllegalMove = errors.New("card is not a legal play")
	ErrOutOfTurn   = errors.New("action out of turn")
	ErrWrongStage  = errors.New("action not valid in current stage")
	ErrBadBid      = errors.New("bid out of range")
)
