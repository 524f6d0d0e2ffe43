package simulation

import (
	"errors"
	"fmt"

	"laptudirm.com/x/ruin/pkg/ruin/flip"
)

// DefaultBalance is the starting balance of every player in the default
// scenario.
const DefaultBalance = 10

// Config configures a Simulation.
type Config struct {
	// The players participating in the simulation.
	Players []PlayerConfig

	// Source of the coin flips.
	Source flip.Source

	// Minimum number of bust players which triggers an elimination. Zero
	// means elimination.DefaultThreshold.
	Threshold int
}

// PlayerConfig describes a single player of the simulation.
type PlayerConfig struct {
	Name    string
	Balance int
}

// DefaultConfig returns the default scenario: five players, a to e, each
// starting with DefaultBalance.
func DefaultConfig(src flip.Source) Config {
	config := Config{Source: src}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		config.Players = append(config.Players, PlayerConfig{
			Name:    name,
			Balance: DefaultBalance,
		})
	}

	return config
}

func (config *Config) validate() error {
	if config.Source == nil {
		return errors.New("no random source")
	}

	if len(config.Players) == 0 {
		return errors.New("no players")
	}

	if config.Threshold < 0 {
		return fmt.Errorf("negative elimination threshold %d", config.Threshold)
	}

	for _, p := range config.Players {
		if p.Balance <= 0 {
			return fmt.Errorf("player %s: non-positive starting balance %d", p.Name, p.Balance)
		}
	}

	return nil
}
