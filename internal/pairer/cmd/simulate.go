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
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/pairer/internal/util"
	"laptudirm.com/x/pairer/pkg/random"
	"laptudirm.com/x/pairer/pkg/stats"
	"laptudirm.com/x/pairer/pkg/tournament"
)

// simulation describes a tournament played out with random players and
// random results.
type simulation struct {
	Players int
	Rounds  int
	System  tournament.SystemType
	Seed    uint64
}

const (
	// drawMargin is how far around the expected score a game is drawn.
	drawMargin = 0.15

	// whiteAdvantage is the rating bonus of the player with white.
	whiteAdvantage = 35
)

// simulate plays out a tournament. A simulation with zero rounds plays a
// full round robin cycle. The simulation stops early, without an error, at
// the first round its pairing system can't pair.
func simulate(ctx context.Context, sim simulation) (*tournament.Tournament, error) {
	rng := random.New(sim.Seed)

	tour := tournament.New(sim.Rounds, sim.System)
	if err := tour.AddPlayers(rng.Players(sim.Players)...); err != nil {
		return nil, err
	}

	rounds := sim.Rounds
	if rounds == 0 {
		rounds = sim.Players - 1
		if sim.Players%2 != 0 {
			rounds = sim.Players
		}
	}

	for played := 0; played < rounds; played++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pairings, err := tour.Pair()
		if errors.Is(err, tournament.ErrSystemNotImplemented) {
			logrus.WithFields(logrus.Fields{
				"seed":  sim.Seed,
				"round": tour.CurrentRound(),
			}).Warn("Stopping simulation, round can't be paired")
			break
		} else if err != nil {
			return nil, err
		}

		results := make([]tournament.Result, len(pairings))
		for i, pairing := range pairings {
			outcome, err := playGame(rng, tour, pairing)
			if err != nil {
				return nil, err
			}

			results[i] = tournament.Result{Pairing: pairing, Outcome: outcome}
		}

		if err := tour.RecordResults(results); err != nil {
			return nil, err
		}
	}

	return tour, nil
}

// playGame decides the outcome of a board with the players' ratings
// weighting the result.
func playGame(rng *random.Generator, tour *tournament.Tournament, pairing tournament.Pairing) (tournament.Outcome, error) {
	if pairing.IsBye() {
		return tournament.LeftWins, nil
	}

	left, found := tour.Player(pairing.Left)
	if !found {
		return tournament.Draw, fmt.Errorf("play game: player %d: %w", pairing.Left, tournament.ErrPlayerNotFound)
	}

	right, found := tour.Player(*pairing.Right)
	if !found {
		return tournament.Draw, fmt.Errorf("play game: player %d: %w", *pairing.Right, tournament.ErrPlayerNotFound)
	}

	diff := float64(left.Info.Rating) - float64(right.Info.Rating)
	if white, _ := pairing.White(); white == pairing.Left {
		diff += whiteAdvantage
	} else {
		diff -= whiteAdvantage
	}

	expected := stats.ExpectedScore(diff)
	roll := float64(rng.Uint64()) / float64(0x80000000)
	switch {
	case roll < expected-drawMargin:
		return tournament.LeftWins, nil
	case roll > expected+drawMargin:
		return tournament.RightWins, nil
	default:
		return tournament.Draw, nil
	}
}

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play out random tournaments",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`simulate plays out tournaments between random players
			with random results and prints their final standings. The
			tournaments are not saved.

			Every tournament gets its own seed, counting up from the
			given one, so a simulation can be repeated exactly. With
			zero rounds a full round robin cycle is played.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var sim simulation
			sim.Players, _ = cmd.Flags().GetInt("players")
			sim.Rounds, _ = cmd.Flags().GetInt("rounds")
			count, _ := cmd.Flags().GetInt("count")

			if sim.Players <= 0 || sim.Rounds < 0 || count <= 0 {
				return fmt.Errorf("simulate: players and count must be positive, rounds not negative")
			}

			system_name, _ := cmd.Flags().GetString("system")
			system, err := tournament.ParseSystem(system_name)
			if err != nil {
				return err
			}
			sim.System = system

			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			tours := make([]*tournament.Tournament, count)

			group, ctx := errgroup.WithContext(cmd.Context())
			group.SetLimit(runtime.GOMAXPROCS(0))

			util.StartSpinner(fmt.Sprintf("Simulating %d tournaments", count))
			for i := range tours {
				sim := sim
				sim.Seed = seed + uint64(i)
				group.Go(func() error {
					tour, err := simulate(ctx, sim)
					if err != nil {
						return fmt.Errorf("simulate seed %d: %w", sim.Seed, err)
					}

					tours[i] = tour
					return nil
				})
			}

			err = group.Wait()
			util.PauseSpinner()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, tour := range tours {
				fmt.Fprintf(out, "Simulation %d (seed %d)\n\n", i+1, seed+uint64(i))
				if err := tour.WriteReport(out); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().IntP("players", "p", 8, "Number of players")
	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds, 0 for a full round robin")
	cmd.Flags().StringP("system", "s", "round-robin", "Pairing system")
	cmd.Flags().Uint64("seed", 0, "Seed of the first tournament")
	cmd.Flags().IntP("count", "c", 1, "Number of tournaments to play")

	return cmd
}
