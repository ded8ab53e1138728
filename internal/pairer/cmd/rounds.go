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
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairer/pkg/common"
	"laptudirm.com/x/pairer/pkg/tournament"
)

func Pair(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "pair tournament",
		Short: "Pair the current round of a tournament",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`pair pairs the current round of the tournament and prints
			the boards. The first pairing starts the tournament, after
			which no more players can be added. Pairing a round again
			before its results are recorded pairs it from scratch.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config)
			if err != nil {
				return err
			}

			var round int
			var pairings []tournament.Pairing
			var tour *tournament.Tournament
			err = store.Update(args[0], func(t *tournament.Tournament) error {
				var err error
				pairings, err = t.Pair()
				round, tour = t.CurrentRound(), t
				return err
			})
			if err != nil {
				return err
			}

			return writePairings(cmd.OutOrStdout(), tour, round, pairings)
		},
	}
}

func Result(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "result tournament outcome...",
		Short: "Record the results of the current round",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`result records the results of the current round and moves
			the tournament to the next round. Give one outcome for every
			board which isn't a bye, in the order pair printed them.

			An outcome is one of 1-0, 1/2-1/2, or 0-1, from the point of
			view of the player printed first on the board.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes := make([]tournament.Outcome, len(args)-1)
			for i, arg := range args[1:] {
				outcome, err := tournament.ParseOutcome(arg)
				if err != nil {
					return err
				}

				outcomes[i] = outcome
			}

			store, err := openStore(config)
			if err != nil {
				return err
			}

			var round int
			err = store.Update(args[0], func(tour *tournament.Tournament) error {
				round = tour.CurrentRound()
				results, err := matchOutcomes(tour, outcomes)
				if err != nil {
					return err
				}

				return tour.RecordResults(results)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded the results of round %d\n", round)
			return nil
		},
	}
}

// matchOutcomes pairs the given outcomes with the games of the current
// round. Byes are given a result without taking an outcome.
func matchOutcomes(tour *tournament.Tournament, outcomes []tournament.Outcome) ([]tournament.Result, error) {
	round := tour.CurrentRound()
	pairings, found := tour.Pairings(round)
	if !found {
		return nil, fmt.Errorf("result: round %d is not paired yet", round)
	}

	results := make([]tournament.Result, 0, len(pairings))
	for _, pairing := range pairings {
		if pairing.IsBye() {
			results = append(results, tournament.Result{Pairing: pairing})
			continue
		}

		if len(outcomes) == 0 {
			return nil, fmt.Errorf("result: too few outcomes for round %d", round)
		}

		results = append(results, tournament.Result{Pairing: pairing, Outcome: outcomes[0]})
		outcomes = outcomes[1:]
	}

	if len(outcomes) > 0 {
		return nil, fmt.Errorf("result: too many outcomes for round %d", round)
	}

	return results, nil
}

func Show(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show tournament",
		Short: "Show the standings of a tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config)
			if err != nil {
				return err
			}

			tour, err := store.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := tour.WriteReport(out); err != nil {
				return err
			}

			round := tour.CurrentRound()
			if pairings, found := tour.Pairings(round); found {
				fmt.Fprintln(out)
				return writePairings(out, tour, round, pairings)
			}

			return nil
		},
	}
}

func writePairings(w io.Writer, tour *tournament.Tournament, round int, pairings []tournament.Pairing) error {
	name := func(id tournament.PlayerID) string {
		if player, found := tour.Player(id); found {
			return player.Info.Name
		}

		logrus.WithField("player", id).Warn("Paired player not found")
		return fmt.Sprint(id)
	}

	if _, err := fmt.Fprintf(w, "Round %d\n", round); err != nil {
		return err
	}

	for i, pairing := range pairings {
		var err error
		if pairing.IsBye() {
			_, err = fmt.Fprintf(w, "%3d. %-24s bye\n", i+1, name(pairing.Left))
		} else {
			_, err = fmt.Fprintf(w, "%3d. %-24s %-6s %-24s %s\n", i+1,
				name(pairing.Left), pairing.LeftColor,
				name(*pairing.Right), pairing.RightColor,
			)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
