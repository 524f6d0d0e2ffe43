// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schedule builds all-play-all pairing schedules for a set of
// players using the circle method.
package schedule

import (
	"slices"

	"laptudirm.com/x/ruin/pkg/ruin/player"
)

// Pair is a single encounter between two players. The first player is the
// heads side of the coin flip and the second one the tails side.
type Pair [2]*player.Player

// Round is a set of encounters in which every player appears exactly once.
type Round []Pair

// Schedule is a complete round-robin: every player meets every other
// player exactly once across all of its rounds.
type Schedule []Round

// Pairs returns all the encounters of the Schedule in playing order.
func (schedule Schedule) Pairs() []Pair {
	var pairs []Pair
	for _, round := range schedule {
		pairs = append(pairs, round...)
	}

	return pairs
}

// Len returns the total number of encounters in the Schedule.
func (schedule Schedule) Len() int {
	n := 0
	for _, round := range schedule {
		n += len(round)
	}

	return n
}

// Build creates a complete Schedule for the given players from scratch.
//
// If there is an odd number of players a placeholder entrant is appended
// to the list, and the augmented list is returned. Callers must keep using
// the returned list so the placeholder stays a member of the set until it
// is eliminated.
func Build(players []*player.Player) ([]*player.Player, Schedule) {
	var rr RoundRobin
	players = rr.Initialize(players)

	schedule := make(Schedule, 0, rr.TotalRounds())
	for round := 0; round < rr.TotalRounds(); round++ {
		schedule = append(schedule, rr.NextRound())
	}

	return players, schedule
}

// RoundRobin generates the rounds of a round-robin one at a time. The
// players are laid out in a circle: the first half on the top row and the
// reversed second half on the bottom row, and each round pairs the rows up
// position-wise. Between rounds every player except the first one moves one
// seat along the circle.
type RoundRobin struct {
	player_count int
	round_number int

	circle_top, circle_bottom []*player.Player
}

// Initialize prepares the RoundRobin for the given players, adding a
// placeholder entrant if their number is odd. It returns the player list
// the rounds will be generated for.
func (rr *RoundRobin) Initialize(players []*player.Player) []*player.Player {
	if len(players)%2 == 1 {
		players = append(players, player.Bye())
	}

	rr.player_count = len(players)
	half := rr.player_count / 2

	rr.circle_top = make([]*player.Player, half)
	rr.circle_bottom = make([]*player.Player, half)

	for i, p := range players {
		if i < half {
			rr.circle_top[i] = p
		} else {
			rr.circle_bottom[rr.player_count-i-1] = p
		}
	}

	rr.round_number = 0
	return players
}

// NextRound returns the next Round of the round-robin.
func (rr *RoundRobin) NextRound() Round {
	if rr.round_number > 0 {
		rr.rotate()
	}

	rr.round_number++

	round := make(Round, len(rr.circle_top))
	for i := range rr.circle_top {
		round[i] = Pair{rr.circle_top[i], rr.circle_bottom[i]}
	}

	return round
}

// rotate moves the last player of the circle to the second seat, keeping
// the first player fixed.
func (rr *RoundRobin) rotate() {
	last_idx := len(rr.circle_top) - 1
	last_elem := rr.circle_top[last_idx]

	rr.circle_top = slices.Insert(rr.circle_top, 1, rr.circle_bottom[0])[:last_idx+1]
	rr.circle_bottom = append(rr.circle_bottom, last_elem)[1:]
}

// TotalRounds returns the number of rounds in a full round-robin.
func (rr *RoundRobin) TotalRounds() int {
	if rr.player_count == 0 {
		return 0
	}

	return rr.player_count - 1
}
