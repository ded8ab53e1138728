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

package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDutchFirstRound(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		tour := newTestTournament(t, 8, 5, DutchSwiss)
		pairings, err := tour.Pair()
		require.NoError(t, err)
		assert.Equal(t, []Pairing{
			NewPairing(8, 1, Black),
			NewPairing(7, 2, Black),
			NewPairing(6, 3, Black),
			NewPairing(5, 4, Black),
		}, pairings)

		// pairing number 1 always plays white
		for _, pairing := range pairings {
			white, ok := pairing.White()
			require.True(t, ok)
			assert.Equal(t, *pairing.Right, white)
		}
	})

	t.Run("odd", func(t *testing.T) {
		tour := newTestTournament(t, 5, 3, DutchSwiss)
		pairings, err := tour.Pair()
		require.NoError(t, err)
		assert.Equal(t, []Pairing{
			NewPairing(5, 2, White),
			NewPairing(4, 3, White),
			NewBye(1),
		}, pairings)
	})

	t.Run("single player", func(t *testing.T) {
		tour := newTestTournament(t, 1, 3, DutchSwiss)
		pairings, err := tour.Pair()
		require.NoError(t, err)
		assert.Equal(t, []Pairing{NewBye(1)}, pairings)
	})
}

func TestDutchFirstRoundFour(t *testing.T) {
	tour := newTestTournament(t, 4, 3, DutchSwiss)
	pairings, err := tour.Pair()
	require.NoError(t, err)
	assert.Equal(t, []Pairing{
		NewPairing(4, 1, Black),
		NewPairing(3, 2, Black),
	}, pairings)
	assert.Equal(t, White, pairings[0].RightColor)
}

func TestDutchLaterRounds(t *testing.T) {
	tour := newTestTournament(t, 6, 5, DutchSwiss)
	playRound(t, tour, LeftWins)

	pairings, err := tour.Pair()
	assert.ErrorIs(t, err, ErrSystemNotImplemented)
	assert.Nil(t, pairings)
	assert.Equal(t, 2, tour.CurrentRound())
}
