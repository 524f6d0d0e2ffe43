package schedule

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"laptudirm.com/x/ruin/pkg/ruin/player"
)

// ErrMalformed is returned by Validate for schedules which are not a
// complete round-robin of their players.
var ErrMalformed = errors.New("malformed schedule")

// Validate checks that the Schedule is a complete round-robin of the given
// players: len(players)-1 rounds of len(players)/2 encounters each, where
// every player appears once per round and every unordered pair of players
// meets exactly once.
func Validate(players []*player.Player, schedule Schedule) error {
	n := len(players)
	if n%2 == 1 {
		return fmt.Errorf("%w: odd number of players %d", ErrMalformed, n)
	}

	members := make(map[uuid.UUID]bool, n)
	for _, p := range players {
		members[p.ID] = true
	}

	rounds := 0
	if n > 0 {
		rounds = n - 1
	}

	if len(schedule) != rounds {
		return fmt.Errorf("%w: %d rounds for %d players", ErrMalformed, len(schedule), n)
	}

	met := make(map[[2]uuid.UUID]bool, n*(n-1)/2)
	for i, round := range schedule {
		if len(round) != n/2 {
			return fmt.Errorf("%w: round %d has %d pairs", ErrMalformed, i+1, len(round))
		}

		playing := make(map[uuid.UUID]bool, n)
		for _, pair := range round {
			a, b := pair[0].ID, pair[1].ID
			if !members[a] || !members[b] {
				return fmt.Errorf("%w: round %d pairs a non-member", ErrMalformed, i+1)
			}

			if a == b {
				return fmt.Errorf("%w: %s paired with itself", ErrMalformed, pair[0].Name)
			}

			if playing[a] || playing[b] {
				return fmt.Errorf("%w: round %d has a player twice", ErrMalformed, i+1)
			}
			playing[a], playing[b] = true, true

			key := pairKey(a, b)
			if met[key] {
				return fmt.Errorf("%w: %s and %s meet twice", ErrMalformed, pair[0].Name, pair[1].Name)
			}
			met[key] = true
		}
	}

	return nil
}

func pairKey(a, b uuid.UUID) [2]uuid.UUID {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return [2]uuid.UUID{a, b}
}
