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

// Package simulation drives a gambler's ruin simulation: players who start
// with equal funds flip coins against each other in round-robin cycles
// until a single player holds all the money.
package simulation

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ruin/pkg/ruin/elimination"
	"laptudirm.com/x/ruin/pkg/ruin/flip"
	"laptudirm.com/x/ruin/pkg/ruin/player"
	"laptudirm.com/x/ruin/pkg/ruin/schedule"
)

// State represents the state of a Simulation.
type State int

const (
	Running State = iota
	Finished
)

// String returns a string representation of the given State.
func (state State) String() string {
	switch state {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "?"
	}
}

// Simulation owns the active player set and its round-robin schedule. It
// is the only one to change the membership of the set, while balances are
// only ever changed by flip.Transfer.
type Simulation struct {
	Config Config

	monitor elimination.Monitor

	players  []*player.Player
	schedule schedule.Schedule

	// total amount of money in the simulation
	total int

	cycles int
	state  State
}

// New creates a new Simulation from the given Config and builds the
// initial schedule for its players.
func New(config Config) (*Simulation, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	var sim Simulation
	sim.Config = config
	sim.monitor = elimination.Monitor{Threshold: config.Threshold}

	players := make([]*player.Player, 0, len(config.Players)+1)
	for _, p := range config.Players {
		players = append(players, player.New(p.Name, p.Balance))
	}

	sim.total = player.Total(players)
	sim.rebuild(players)

	if sim.Over() {
		sim.state = Finished
	}

	return &sim, nil
}

// Players returns the active player set, placeholder included.
func (sim *Simulation) Players() []*player.Player {
	return sim.players
}

// Schedule returns the current round-robin schedule.
func (sim *Simulation) Schedule() schedule.Schedule {
	return sim.schedule
}

// Cycles returns the number of cycles run so far.
func (sim *Simulation) Cycles() int {
	return sim.cycles
}

// State returns the current State of the Simulation.
func (sim *Simulation) State() State {
	return sim.state
}

// Over reports whether fewer than two players still have money.
func (sim *Simulation) Over() bool {
	return len(player.Solvent(sim.players)) < 2
}

// Run steps the Simulation until it is over and reports the results.
func (sim *Simulation) Run() Report {
	for !sim.Over() {
		sim.Step()
	}

	sim.state = Finished
	return sim.Report()
}

// Step runs a single cycle of the Simulation. Bust players are eliminated
// first, and if anyone was removed the schedule is rebuilt for the new
// player set. Then every encounter of the schedule is played once.
//
// Step reports whether a cycle was run, which is not the case once the
// Simulation has finished.
func (sim *Simulation) Step() bool {
	if sim.state == Finished {
		return false
	}

	if players, bust := sim.monitor.CheckAndRemove(sim.players); bust {
		logrus.Debugf(
			"Cycle #%d: eliminated %d players, rebuilding schedule\n",
			sim.cycles+1, len(sim.players)-len(players),
		)

		sim.rebuild(players)
	}

	for _, round := range sim.schedule {
		for _, pair := range round {
			flip.Transfer(sim.Config.Source, pair[0], pair[1])
		}
	}

	sim.cycles++
	sim.check()

	logrus.Tracef("Cycle #%d: %s\n", sim.cycles, sim.players)

	if sim.Over() {
		sim.state = Finished
	}

	return true
}

// Report returns the current results of the Simulation.
func (sim *Simulation) Report() Report {
	return Report{
		Cycles:    sim.cycles,
		Survivors: player.Solvent(sim.players),
	}
}

// rebuild replaces the active player set with the given players and
// generates a new schedule for them from scratch.
func (sim *Simulation) rebuild(players []*player.Player) {
	sim.players, sim.schedule = schedule.Build(players)
	if err := schedule.Validate(sim.players, sim.schedule); err != nil {
		logrus.Panicf("simulation: %v", err)
	}
}

// check panics if the balances of the players are inconsistent. Transfers
// skip players without money and move exactly one unit, so neither of
// these can happen unless the transaction engine is broken.
func (sim *Simulation) check() {
	for _, p := range sim.players {
		if p.Balance < 0 {
			logrus.Panicf("simulation: negative balance %s", p)
		}
	}

	if total := player.Total(sim.players); total != sim.total {
		logrus.Panicf("simulation: total money changed from %d to %d", sim.total, total)
	}
}

// Report contains the results of a Simulation.
type Report struct {
	Cycles    int
	Survivors []*player.Player
}

func (report Report) String() string {
	var str strings.Builder
	fmt.Fprintf(&str, "It took %d cycles for 1 player to win.\n", report.Cycles)
	for _, survivor := range report.Survivors {
		fmt.Fprintf(&str, "The winner is %s\n", survivor)
	}

	return str.String()
}
