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

package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/pairer/pkg/tournament"
)

func TestGenerator(t *testing.T) {
	t.Run("known sequence", func(t *testing.T) {
		g := New(0)
		assert.Equal(t, uint32(38), g.Uint32())
		assert.Equal(t, uint32(7719), g.Uint32())

		g = New(0)
		assert.Equal(t, uint64(335903614), g.Uint64())
		assert.Equal(t, uint64(436792849), g.Uint64())
	})

	t.Run("deterministic", func(t *testing.T) {
		a, b := New(42), New(42)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Uint64(), b.Uint64())
			require.Equal(t, a.Uint32(), b.Uint32())
		}
	})

	t.Run("ranges", func(t *testing.T) {
		g := New(7)
		for i := 0; i < 1000; i++ {
			assert.LessOrEqual(t, g.Uint32(), uint32(0x7fff))
			assert.LessOrEqual(t, g.Uint64(), uint64(0x7fffffff))

			n := g.Intn(10)
			assert.True(t, n >= 0 && n < 10)
		}
	})

	t.Run("intn panics", func(t *testing.T) {
		assert.Panics(t, func() { New(1).Intn(0) })
	})
}

func TestPlayers(t *testing.T) {
	players := New(1234).Players(50)
	require.Len(t, players, 50)

	seen := make(map[tournament.PlayerID]bool)
	for _, player := range players {
		info := player.Info
		assert.NotEqual(t, tournament.ByeID, info.ID)
		assert.False(t, seen[info.ID], "duplicate id %d", info.ID)
		seen[info.ID] = true

		assert.GreaterOrEqual(t, info.Rating, uint16(1000))
		assert.Less(t, info.Rating, uint16(3000))
		assert.Less(t, info.Title, tournament.TitleN)
		assert.NotEmpty(t, info.Name)
		assert.Zero(t, player.Score)
	}

	again := New(1234).Players(50)
	assert.Equal(t, players, again)
}

func TestRandomTournament(t *testing.T) {
	tour := tournament.New(5, tournament.BergerTable)
	require.NoError(t, tour.AddPlayers(New(99).Players(10)...))

	pairings, err := tour.Pair()
	require.NoError(t, err)
	assert.Len(t, pairings, 5)
}
