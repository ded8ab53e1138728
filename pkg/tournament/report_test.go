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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandings(t *testing.T) {
	tour := newTestTournament(t, 4, 3, BergerTable)

	// 1 (white) vs 4, 2 (white) vs 3
	playRound(t, tour, RightWins)

	ids := []PlayerID{}
	for _, standing := range tour.Standings() {
		ids = append(ids, standing.Player.Info.ID)
	}
	assert.Equal(t, []PlayerID{3, 4, 1, 2}, ids)

	standings := tour.Standings()
	assert.InDelta(t, float64(1980+800), standings[0].Performance, 1e-9)
	assert.InDelta(t, float64(1970-800), standings[3].Performance, 1e-9)
}

func TestWriteReport(t *testing.T) {
	tour := newTestTournament(t, 3, 0, BergerTable)
	playRound(t, tour, LeftWins)
	require.NoError(t, tour.Withdraw(3))

	var report strings.Builder
	require.NoError(t, tour.WriteReport(&report))

	out := report.String()
	assert.Contains(t, out, "System:  round-robin")
	assert.Contains(t, out, "Rounds:  unbounded")
	assert.Contains(t, out, "Round:   2")
	assert.Contains(t, out, "Scoring: 2/1/0")
	assert.Contains(t, out, "* withdrawn")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	first := strings.Index(out, "Player 1")
	second := strings.Index(out, "Player 2")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	for _, line := range lines {
		if strings.HasPrefix(line, "║") {
			assert.Equal(t, len(reportHeader)+2, len([]rune(line)), line)
		}
	}
}
