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
	"slices"
)

// RoundRobin pairs rounds with the circle method, so that every player
// meets every other player exactly once in N-1 rounds (N rounds if the
// number of players is odd). Rounds after that repeat the cycle.
type RoundRobin struct{}

func (rr *RoundRobin) PairRound(tour *Tournament) ([]Pairing, error) {
	round := tour.CurrentRound()

	// Withdrawn players keep their place in the circle so that the rest of
	// the schedule doesn't change, their opponents get byes instead.
	circle := make([]PlayerID, 0, tour.PlayerCount()+1)
	for _, player := range tour.PlayersByRank() {
		if tour.IsWithdrawn(player.Info.ID) {
			circle = append(circle, ByeID)
		} else {
			circle = append(circle, player.Info.ID)
		}
	}

	if len(circle)%2 != 0 {
		circle = append(circle, ByeID)
	}

	player_count := len(circle)
	if player_count == 0 {
		return nil, nil
	}

	// The first player stays fixed while everyone else moves around it.
	rest := slices.Clone(circle[1:])
	shift := (round - 1) % (player_count - 1)
	rest = append(rest[shift:], rest[:shift]...)
	circle = append(circle[:1], rest...)

	left_color := White
	if round%2 == 0 {
		left_color = Black
	}

	pairings := make([]Pairing, 0, player_count/2)
	for i := 0; i < player_count/2; i++ {
		left, right := circle[i], circle[player_count-1-i]

		switch {
		case left == ByeID && right == ByeID:
			continue
		case left == ByeID:
			pairings = append(pairings, NewBye(right))
		case right == ByeID:
			pairings = append(pairings, NewBye(left))
		default:
			pairings = append(pairings, NewPairing(left, right, left_color))
		}
	}

	return pairings, nil
}
