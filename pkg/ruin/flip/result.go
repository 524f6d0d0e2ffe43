package flip

import "laptudirm.com/x/ruin/pkg/ruin/player"

// Result represents the outcome of a single coin flip.
type Result int

const (
	Skipped Result = iota // One of the players had nothing to bet
	Heads                 // Heads player takes a unit from tails
	Tails                 // Tails player takes a unit from heads
)

// Winner returns the player who received money in a flip with the given
// Result, or nil if the flip was skipped.
func (result Result) Winner(heads, tails *player.Player) *player.Player {
	switch result {
	case Heads:
		return heads
	case Tails:
		return tails
	default:
		return nil
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Skipped:
		return "skipped"
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return "?"
	}
}
