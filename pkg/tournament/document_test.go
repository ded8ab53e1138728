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
	"gopkg.in/yaml.v3"
)

func TestDocumentResume(t *testing.T) {
	tour := newTestTournament(t, 7, 7, BergerTable)
	playRound(t, tour, LeftWins)
	playRound(t, tour, Draw)
	require.NoError(t, tour.Withdraw(4))

	data, err := yaml.Marshal(tour)
	require.NoError(t, err)

	var loaded Tournament
	require.NoError(t, yaml.Unmarshal(data, &loaded))

	assert.Equal(t, tour.System(), loaded.System())
	assert.Equal(t, tour.NumberOfRounds(), loaded.NumberOfRounds())
	assert.Equal(t, tour.CurrentRound(), loaded.CurrentRound())
	assert.Equal(t, tour.ResultScores(), loaded.ResultScores())
	assert.Equal(t, tour.Withdrawn(), loaded.Withdrawn())
	assert.Equal(t, tour.Players(), loaded.Players())

	for round := 1; round <= 2; round++ {
		want, _ := tour.Pairings(round)
		got, found := loaded.Pairings(round)
		require.True(t, found)
		assert.Equal(t, want, got)
	}

	// Both copies must pair the remaining rounds in the same way.
	for tour.CurrentRound() <= tour.NumberOfRounds() {
		assert.Equal(t, playRound(t, tour, RightWins), playRound(t, &loaded, RightWins))
	}
	assert.Equal(t, tour.Standings(), loaded.Standings())
}

func TestDocumentInvalid(t *testing.T) {
	tests := map[string]string{
		"reserved id": `
system: round-robin
players:
  - info: {id: 0, name: Bye}
`,
		"duplicate id": `
system: dutch
players:
  - info: {id: 1, name: A}
  - info: {id: 1, name: B}
`,
		"unknown withdrawal": `
system: dutch
current-round: 2
players:
  - info: {id: 1, name: A}
withdrawn:
  - {player: 2, round: 1}
`,
		"null player": `
system: dutch
players:
  - ~
`,
		"negative round": `
system: dutch
current-round: -1
`,
		"unknown system": `
system: knockout
`,
		"unknown title": `
players:
  - info: {id: 1, name: A, title: XYZ}
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			var tour Tournament
			assert.Error(t, yaml.Unmarshal([]byte(doc), &tour))
		})
	}
}
