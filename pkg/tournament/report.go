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
	"io"
	"slices"
	"strings"

	"laptudirm.com/x/pairer/pkg/stats"
)

// Standing is a player's place in the tournament.
type Standing struct {
	Player      *Player
	Withdrawn   bool
	Performance float64
}

// Standings returns the players ordered by score, highest first. Players
// with equal scores are ordered by rank.
func (tour *Tournament) Standings() []Standing {
	players := tour.PlayersByRank()
	slices.SortStableFunc(players, func(a, b *Player) int {
		return cmp.Compare(b.Score, a.Score)
	})

	standings := make([]Standing, len(players))
	for i, player := range players {
		standings[i] = Standing{
			Player:      player,
			Withdrawn:   tour.IsWithdrawn(player.Info.ID),
			Performance: tour.performance(player),
		}
	}

	return standings
}

// performance is the player's rating performance against the opponents
// played so far. Byes don't count.
func (tour *Tournament) performance(player *Player) float64 {
	if len(player.Opponents) == 0 {
		return float64(player.Info.Rating)
	}

	total := 0.0
	for _, id := range player.Opponents {
		if opponent, found := tour.players[id]; found {
			total += float64(opponent.Info.Rating)
		}
	}

	average := total / float64(len(player.Opponents))
	return stats.Performance(average, player.Wins, player.Draws, player.Losses)
}

const reportHeader = "   #  Name                  Title  Rating  Score    W    D    L   Perf "

// WriteReport writes the tournament's settings and standings to w.
func (tour *Tournament) WriteReport(w io.Writer) error {
	rounds := "unbounded"
	if tour.numberOfRounds > 0 {
		rounds = fmt.Sprint(tour.numberOfRounds)
	}

	round := "not started"
	if tour.HasStarted() {
		round = fmt.Sprint(tour.currentRound)
	}

	var report strings.Builder
	fmt.Fprintf(&report, "System:  %s\n", tour.system)
	fmt.Fprintf(&report, "Rounds:  %s\n", rounds)
	fmt.Fprintf(&report, "Round:   %s\n", round)
	fmt.Fprintf(&report, "Scoring: %d/%d/%d\n", tour.scores.Win, tour.scores.Draw, tour.scores.Loss)
	fmt.Fprintf(&report, "Players: %d\n\n", tour.PlayerCount())

	border := strings.Repeat("═", len(reportHeader))
	fmt.Fprintf(&report, "╔%s╗\n", border)
	fmt.Fprintf(&report, "║%s║\n", reportHeader)
	fmt.Fprintf(&report, "╠%s╣\n", border)
	for i, standing := range tour.Standings() {
		player := standing.Player

		mark := " "
		if standing.Withdrawn {
			mark = "*"
		}

		fmt.Fprintf(&report,
			"║ %3d%s %-20.20s  %-5s  %6d  %5d %4d %4d %4d %6.0f ║\n",
			i+1, mark, player.Info.Name, player.Info.Title, player.Info.Rating,
			player.Score, player.Wins, player.Draws, player.Losses,
			standing.Performance,
		)
	}
	fmt.Fprintf(&report, "╚%s╝\n", border)

	if len(tour.withdrawn) > 0 {
		report.WriteString("* withdrawn\n")
	}

	_, err := io.WriteString(w, report.String())
	return err
}
