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

	"gopkg.in/yaml.v3"
)

// document is the form a Tournament is saved in.
type document struct {
	System         SystemType   `yaml:"system"`
	NumberOfRounds int          `yaml:"rounds"`
	CurrentRound   int          `yaml:"current-round"`
	Scores         ResultScores `yaml:"scores"`

	Players   []*Player    `yaml:"players"`
	Withdrawn []Withdrawal `yaml:"withdrawn,omitempty"`
	Pairings  [][]Pairing  `yaml:"pairings,omitempty"`
}

func (tour *Tournament) MarshalYAML() (interface{}, error) {
	return document{
		System:         tour.system,
		NumberOfRounds: tour.numberOfRounds,
		CurrentRound:   tour.currentRound,
		Scores:         tour.scores,

		Players:   tour.Players(),
		Withdrawn: tour.withdrawn,
		Pairings:  tour.pairings,
	}, nil
}

func (tour *Tournament) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return err
	}

	if doc.CurrentRound < 0 || doc.NumberOfRounds < 0 {
		return fmt.Errorf("load tournament: negative round number")
	}

	players := make(map[PlayerID]*Player, len(doc.Players))
	for i, player := range doc.Players {
		if player == nil {
			return fmt.Errorf("load tournament: player %d is empty", i+1)
		}

		id := player.Info.ID
		if id == ByeID {
			return fmt.Errorf("load tournament: %w", ErrReservedID)
		}

		if _, found := players[id]; found {
			return fmt.Errorf("load tournament: duplicate player id %d", id)
		}

		players[id] = player
	}

	for _, withdrawal := range doc.Withdrawn {
		if _, found := players[withdrawal.Player]; !found {
			return fmt.Errorf("load tournament: withdrawn player %d: %w", withdrawal.Player, ErrPlayerNotFound)
		}
	}

	*tour = Tournament{
		system:         doc.System,
		numberOfRounds: doc.NumberOfRounds,
		currentRound:   doc.CurrentRound,
		players:        players,
		withdrawn:      doc.Withdrawn,
		pairings:       doc.Pairings,
		scores:         doc.Scores,
	}

	return nil
}
