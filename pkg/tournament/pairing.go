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

import "fmt"

// Pairing is a single board of a round. A Pairing without a Right player is
// a bye for the Left player, and a bye carries no colors.
type Pairing struct {
	Left  PlayerID  `yaml:"left"`
	Right *PlayerID `yaml:"right,omitempty"`

	LeftColor  Color `yaml:"left-color"`
	RightColor Color `yaml:"right-color"`
}

// NewPairing creates a board between the two given players.
func NewPairing(left, right PlayerID, leftColor Color) Pairing {
	return Pairing{
		Left:       left,
		Right:      &right,
		LeftColor:  leftColor,
		RightColor: leftColor.Other(),
	}
}

// NewBye creates a bye for the given player.
func NewBye(player PlayerID) Pairing {
	return Pairing{
		Left:       player,
		LeftColor:  ColorNone,
		RightColor: ColorNone,
	}
}

// IsBye reports whether the Pairing is a bye.
func (pairing Pairing) IsBye() bool {
	return pairing.Right == nil
}

// Players returns the ids of the players on the board, with ByeID standing
// in for a missing right player.
func (pairing Pairing) Players() (PlayerID, PlayerID) {
	if pairing.Right == nil {
		return pairing.Left, ByeID
	}

	return pairing.Left, *pairing.Right
}

// White returns the player playing with the white pieces, if any.
func (pairing Pairing) White() (PlayerID, bool) {
	switch {
	case pairing.IsBye():
		return ByeID, false
	case pairing.LeftColor == White:
		return pairing.Left, true
	case pairing.RightColor == White:
		return *pairing.Right, true
	default:
		return ByeID, false
	}
}

// ScoreDifference returns the absolute difference between the scores of the
// two players on the board. Byes have a difference of zero.
func (pairing Pairing) ScoreDifference(tour *Tournament) (uint, error) {
	if pairing.IsBye() {
		return 0, nil
	}

	left, found := tour.Player(pairing.Left)
	if !found {
		return 0, fmt.Errorf("score difference: player %d: %w", pairing.Left, ErrPlayerNotFound)
	}

	right, found := tour.Player(*pairing.Right)
	if !found {
		return 0, fmt.Errorf("score difference: player %d: %w", *pairing.Right, ErrPlayerNotFound)
	}

	if left.Score > right.Score {
		return left.Score - right.Score, nil
	}

	return right.Score - left.Score, nil
}

// Equal reports whether both pairings describe the same board.
func (pairing Pairing) Equal(other Pairing) bool {
	l1, r1 := pairing.Players()
	l2, r2 := other.Players()
	return l1 == l2 && r1 == r2 &&
		pairing.LeftColor == other.LeftColor &&
		pairing.RightColor == other.RightColor
}

func (pairing Pairing) String() string {
	if pairing.IsBye() {
		return fmt.Sprintf("%d bye", pairing.Left)
	}

	return fmt.Sprintf("%d (%s) vs %d (%s)",
		pairing.Left, pairing.LeftColor,
		*pairing.Right, pairing.RightColor,
	)
}
