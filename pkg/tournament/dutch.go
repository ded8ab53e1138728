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
	"fmt"
	"slices"
)

// Dutch is the Dutch swiss system. Only the first round, which depends on
// nothing but the pairing numbers, is implemented.
type Dutch struct{}

func (dutch *Dutch) PairRound(tour *Tournament) ([]Pairing, error) {
	if round := tour.CurrentRound(); round != 1 {
		return nil, fmt.Errorf("dutch round %d: %w", round, ErrSystemNotImplemented)
	}

	return dutch.pairFirstRound(tour), nil
}

// pairFirstRound folds the players in descending order of their pairing
// numbers, N down to 1: pairing number N plays the lowest remaining number,
// N-1 the next one, and so on. If the number of players is odd, pairing
// number 1 comes last in that order and gets the bye. The left player of
// every board gets white if the number of players is odd and black
// otherwise.
func (dutch *Dutch) pairFirstRound(tour *Tournament) []Pairing {
	players := tour.activePlayers()
	slices.Reverse(players)
	count := len(players)

	left_color := Black
	if count%2 != 0 {
		left_color = White
	}

	var bye *Player
	if count%2 != 0 {
		bye, players = players[count-1], players[:count-1]
		count--
	}

	pairings := make([]Pairing, 0, count/2+1)
	for i := 0; i < count/2; i++ {
		pairings = append(pairings, NewPairing(
			players[i].Info.ID,
			players[count-1-i].Info.ID,
			left_color,
		))
	}

	if bye != nil {
		pairings = append(pairings, NewBye(bye.Info.ID))
	}

	return pairings
}
