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
	"cmp"
	"fmt"
	"strings"
)

// PlayerID uniquely identifies a player inside a tournament. The zero
// PlayerID is never a real player, it stands for the bye.
type PlayerID uint64

// ByeID is the id of the synthetic opponent used to fill odd rounds.
const ByeID PlayerID = 0

// PlayerInfo is the identity of a player. It doesn't change during a
// tournament.
type PlayerInfo struct {
	ID     PlayerID `yaml:"id"`
	Name   string   `yaml:"name"`
	Rating uint16   `yaml:"rating"`
	Title  Title    `yaml:"title"`
}

// Compare orders players by rating, then by title. Names break the remaining
// ties in reverse lexical order, so that the alphabetically first of two
// otherwise equal players is the greater one.
func Compare(a, b PlayerInfo) int {
	if c := cmp.Compare(a.Rating, b.Rating); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}

	return strings.Compare(b.Name, a.Name)
}

func (info PlayerInfo) String() string {
	return fmt.Sprintf("%d %s %s %d", info.ID, info.Name, info.Title, info.Rating)
}

// Player is a tournament entry and everything the pairing systems need to
// know about its progress through the tournament.
type Player struct {
	Info PlayerInfo `yaml:"info"`

	Score     uint       `yaml:"score"`
	Opponents []PlayerID `yaml:"opponents,flow,omitempty"`

	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`

	// ColorHistory lists the colors played, oldest first. ColorDifference is
	// the number of games with white minus the number of games with black.
	ColorHistory    []Color `yaml:"colors,flow,omitempty"`
	ColorDifference int     `yaml:"color-difference"`

	HasBye        bool   `yaml:"has-bye,omitempty"`
	PairingNumber uint16 `yaml:"pairing-number,omitempty"`

	Downfloats uint8 `yaml:"downfloats,omitempty"`
	Upfloats   uint8 `yaml:"upfloats,omitempty"`
}

// NewPlayer creates a new Player with the given identity.
func NewPlayer(id PlayerID, name string, title Title, rating uint16) *Player {
	return &Player{
		Info: PlayerInfo{
			ID:     id,
			Name:   name,
			Title:  title,
			Rating: rating,
		},
	}
}

// ColorPreference returns the color the player should be given next and how
// strongly it should be given that color, following the Dutch rules:
//
//  1. An absolute preference for the minority color if the color difference
//     is greater than one.
//  2. An absolute preference for the other color if the last two games were
//     played with the same color.
//  3. A strong preference for the minority color if the color difference is
//     one.
//  4. A mild preference for alternating colors if the colors are balanced.
//  5. No preference if the player hasn't played yet.
func (player *Player) ColorPreference() ColorPreference {
	history := player.ColorHistory
	played := len(history)
	diff := player.ColorDifference

	switch {
	case diff > 1 || diff < -1:
		return ColorPreference{
			Color: minorityColor(diff),
			Level: PreferenceAbsolute,
			Width: uint8(min(abs(diff), 255)),
		}

	case played > 1 && history[played-1] == history[played-2] && history[played-1] != ColorNone:
		return ColorPreference{
			Color: history[played-1].Other(),
			Level: PreferenceAbsolute,
		}

	case diff == 1 || diff == -1:
		return ColorPreference{
			Color: minorityColor(diff),
			Level: PreferenceStrong,
		}

	case played > 0 && diff == 0:
		return ColorPreference{
			Color: history[played-1].Other(),
			Level: PreferenceMild,
		}
	}

	return ColorPreference{Color: ColorNone, Level: PreferenceNone}
}

// Played reports whether the player has already met the given opponent.
func (player *Player) Played(opponent PlayerID) bool {
	for _, id := range player.Opponents {
		if id == opponent {
			return true
		}
	}

	return false
}

func (player *Player) String() string {
	return fmt.Sprintf("%s %d", player.Info, player.Score)
}

// minorityColor is the color which brings a color difference back to zero.
func minorityColor(diff int) Color {
	if diff > 0 {
		return Black
	}

	return White
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
