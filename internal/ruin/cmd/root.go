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

package cmd

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ruin/internal/util"
	"laptudirm.com/x/ruin/pkg/ruin/flip"
	"laptudirm.com/x/ruin/pkg/ruin/simulation"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "ruin",
		Short: "Simulate players flipping coins until one holds all the money",
		Long: heredoc.Doc(`ruin simulates five players, each starting with the same
			amount of money, playing heads or tails against each other in
			round-robin cycles. Every flip moves a single unit of money
			from the loser to the winner.

			Players who run out of money are eliminated, and the pairings
			are rebuilt for the players that remain. The simulation ends
			once a single player holds all of the money, and reports how
			many cycles that took.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			seed := time.Now().UnixNano()
			if cmd.Flag("seed").Changed {
				var err error
				if seed, err = cmd.Flags().GetInt64("seed"); err != nil {
					return err
				}
			}

			logrus.Debugf("Using seed %d\n", seed)

			sim, err := simulation.New(simulation.DefaultConfig(flip.NewSource(seed)))
			if err != nil {
				return err
			}

			spin := util.NewSpinner(cmd.ErrOrStderr(), " flipping coins")
			spin.Start()
			report := sim.Run()
			spin.Stop()

			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Ruin's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Flags().Int64("seed", 0, "Seed the coin flips for a reproducible run")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	return root
}
