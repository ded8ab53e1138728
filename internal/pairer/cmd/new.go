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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairer/pkg/common"
	"laptudirm.com/x/pairer/pkg/tournament"
)

func New(config common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new tournament",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`new creates an empty tournament with the given name. If
			no name is given, a unique one is generated.

			The supported pairing systems are round-robin (or berger)
			and dutch (or swiss). Only the first round of a dutch
			tournament can be paired. A tournament with zero rounds
			has no fixed number of rounds.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			name := "tour-" + xid.New().String()
			if len(args) > 0 {
				name = args[0]
			}

			system_name, _ := cmd.Flags().GetString("system")
			system, err := tournament.ParseSystem(system_name)
			if err != nil {
				return err
			}

			rounds, _ := cmd.Flags().GetInt("rounds")
			if rounds < 0 {
				return fmt.Errorf("new: negative number of rounds %d", rounds)
			}

			var scores tournament.ResultScores
			scores.Win, _ = cmd.Flags().GetUint("win")
			scores.Draw, _ = cmd.Flags().GetUint("draw")
			scores.Loss, _ = cmd.Flags().GetUint("loss")

			store, err := openStore(config)
			if err != nil {
				return err
			}

			tour := tournament.NewWithResultScores(rounds, system, scores)
			if err := store.Create(name, tour); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"name":   name,
				"system": system,
				"rounds": rounds,
			}).Debug("Created tournament")

			fmt.Fprintf(cmd.OutOrStdout(), "Created tournament %s\n", name)
			return nil
		},
	}

	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds, 0 for no limit")
	cmd.Flags().StringP("system", "s", "round-robin", "Pairing system")
	cmd.Flags().Uint("win", tournament.DefaultResultScores.Win, "Points for a win")
	cmd.Flags().Uint("draw", tournament.DefaultResultScores.Draw, "Points for a draw")
	cmd.Flags().Uint("loss", tournament.DefaultResultScores.Loss, "Points for a loss")

	return cmd
}
