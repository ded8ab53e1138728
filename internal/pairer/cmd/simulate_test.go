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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/pairer/pkg/random"
	"laptudirm.com/x/pairer/pkg/tournament"
)

func TestSimulate(t *testing.T) {
	t.Run("full round robin", func(t *testing.T) {
		tour, err := simulate(context.Background(), simulation{
			Players: 6,
			System:  tournament.BergerTable,
			Seed:    11,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, tour.CurrentRound())

		total := uint(0)
		for _, player := range tour.Players() {
			assert.Len(t, player.Opponents, 5)
			total += player.Score
		}

		// every game hands out the same number of points
		assert.Equal(t, uint(15*2), total)
	})

	t.Run("deterministic", func(t *testing.T) {
		sim := simulation{Players: 9, Rounds: 4, System: tournament.BergerTable, Seed: 5}
		a, err := simulate(context.Background(), sim)
		require.NoError(t, err)
		b, err := simulate(context.Background(), sim)
		require.NoError(t, err)
		assert.Equal(t, a.Standings(), b.Standings())
	})

	t.Run("dutch stops", func(t *testing.T) {
		tour, err := simulate(context.Background(), simulation{
			Players: 7,
			Rounds:  5,
			System:  tournament.DutchSwiss,
			Seed:    1,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, tour.CurrentRound())
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := simulate(ctx, simulation{Players: 4, System: tournament.BergerTable})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulateCommand(t *testing.T) {
	config := newTestConfig(t)

	out := mustRun(t, config, "simulate", "--players", "5", "--seed", "1", "--count", "3")
	assert.Contains(t, out, "Simulation 1 (seed 1)")
	assert.Contains(t, out, "Simulation 3 (seed 3)")

	_, err := run(t, config, "simulate", "--count", "0")
	assert.Error(t, err)
}

func TestPlayGame(t *testing.T) {
	tour := tournament.New(1, tournament.BergerTable)
	require.NoError(t, tour.AddPlayers(
		tournament.NewPlayer(1, "A", tournament.Untitled, 2000),
		tournament.NewPlayer(2, "B", tournament.Untitled, 1900),
	))

	rng := random.New(3)

	outcome, err := playGame(rng, tour, tournament.NewBye(1))
	require.NoError(t, err)
	assert.Equal(t, tournament.LeftWins, outcome)

	_, err = playGame(rng, tour, tournament.NewPairing(1, 2, tournament.White))
	assert.NoError(t, err)

	_, err = playGame(rng, tour, tournament.NewPairing(1, 9, tournament.White))
	assert.ErrorIs(t, err, tournament.ErrPlayerNotFound)

	_, err = playGame(rng, tour, tournament.NewPairing(9, 2, tournament.Black))
	assert.ErrorIs(t, err, tournament.ErrPlayerNotFound)
}
