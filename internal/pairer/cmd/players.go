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
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairer/pkg/common"
	"laptudirm.com/x/pairer/pkg/random"
	"laptudirm.com/x/pairer/pkg/tournament"
)

func Add(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add tournament id player-name rating [title]",
		Short: "Add a player to a tournament",
		Args:  cobra.RangeArgs(4, 5),
		Long: heredoc.Doc(`add adds a player to a tournament which hasn't started
			yet. Adding a player with the id of an existing player
			replaces that player.

			The title is one of GM, IM, WGM, FM, WIM, CM, WFM, and WCM.
			Leave it out for untitled players.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("add: invalid id %q", args[1])
			}

			rating, err := strconv.ParseUint(args[3], 10, 16)
			if err != nil {
				return fmt.Errorf("add: invalid rating %q", args[3])
			}

			title := tournament.Untitled
			if len(args) == 5 {
				if title, err = tournament.ParseTitle(args[4]); err != nil {
					return err
				}
			}

			store, err := openStore(config)
			if err != nil {
				return err
			}

			player := tournament.NewPlayer(tournament.PlayerID(id), args[2], title, uint16(rating))
			err = store.Update(args[0], func(tour *tournament.Tournament) error {
				return tour.AddPlayer(player)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", player.Info, args[0])
			return nil
		},
	}
}

func Generate(config common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate tournament",
		Short: "Add random players to a tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("players")
			if count <= 0 {
				return fmt.Errorf("generate: invalid number of players %d", count)
			}

			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			logrus.WithFields(logrus.Fields{
				"players": count,
				"seed":    seed,
			}).Debug("Generating players")

			store, err := openStore(config)
			if err != nil {
				return err
			}

			players := random.New(seed).Players(count)
			err = store.Update(args[0], func(tour *tournament.Tournament) error {
				return tour.AddPlayers(players...)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d random players to %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().IntP("players", "p", 8, "Number of players to generate")
	cmd.Flags().Uint64P("seed", "s", 0, "Seed for the random generator")

	return cmd
}

func Withdraw(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw tournament id",
		Short: "Withdraw a player from a tournament",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("withdraw: invalid id %q", args[1])
			}

			store, err := openStore(config)
			if err != nil {
				return err
			}

			err = store.Update(args[0], func(tour *tournament.Tournament) error {
				return tour.Withdraw(tournament.PlayerID(id))
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Withdrew player %d from %s\n", id, args[0])
			return nil
		},
	}
}
