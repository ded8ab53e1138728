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

// Outcome is the result of a single board, from the left player's side.
type Outcome int

const (
	LeftWins  Outcome = +1
	Draw      Outcome = 0
	RightWins Outcome = -1
)

// ParseOutcome parses the usual notation for game results.
func ParseOutcome(str string) (Outcome, error) {
	switch str {
	case "1-0":
		return LeftWins, nil
	case "1/2-1/2", "½-½", "=":
		return Draw, nil
	case "0-1":
		return RightWins, nil
	default:
		return Draw, fmt.Errorf("parse outcome: invalid result %q", str)
	}
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case LeftWins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case RightWins:
		return "0-1"
	default:
		return "?-?"
	}
}

// Result is the outcome of one of the round's pairings. The Outcome of a
// bye is ignored, the player always gets the points for a win.
type Result struct {
	Pairing Pairing
	Outcome Outcome
}

// ResultScores are the points given for a win, a draw, and a loss.
type ResultScores struct {
	Win  uint `yaml:"win"`
	Draw uint `yaml:"draw"`
	Loss uint `yaml:"loss"`
}

// DefaultResultScores gives two points for a win and one for a draw, which
// keeps every score a whole number.
var DefaultResultScores = ResultScores{Win: 2, Draw: 1, Loss: 0}

// Points returns the points the left and the right player get for the
// given Outcome.
func (scores ResultScores) Points(outcome Outcome) (left, right uint) {
	switch outcome {
	case LeftWins:
		return scores.Win, scores.Loss
	case RightWins:
		return scores.Loss, scores.Win
	default:
		return scores.Draw, scores.Draw
	}
}
