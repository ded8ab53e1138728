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
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Tournament is a set of players and the rounds they have been paired for.
// A Tournament is not safe for concurrent use.
type Tournament struct {
	system SystemType

	// Optimal number of rounds for a swiss is about log2(players) + k. Zero
	// means there is no fixed number of rounds.
	numberOfRounds int
	currentRound   int

	players   map[PlayerID]*Player
	withdrawn []Withdrawal

	// pairings[i] holds the pairings of round i+1.
	pairings [][]Pairing

	scores ResultScores
}

// Withdrawal records a player leaving the tournament after it started.
type Withdrawal struct {
	Player PlayerID `yaml:"player"`
	Round  int      `yaml:"round"`
}

// ScoreGroups maps each score to the players who have that score.
type ScoreGroups map[uint][]PlayerID

// Scores returns the scores of the groups, highest first.
func (groups ScoreGroups) Scores() []uint {
	scores := slices.Collect(maps.Keys(groups))
	slices.SortFunc(scores, func(a, b uint) int {
		return cmp.Compare(b, a)
	})
	return scores
}

// New creates an empty tournament which gives the default scores for
// results.
func New(numberOfRounds int, system SystemType) *Tournament {
	return NewWithResultScores(numberOfRounds, system, DefaultResultScores)
}

// NewWithResultScores creates an empty tournament with the given scores for
// wins, draws, and losses.
func NewWithResultScores(numberOfRounds int, system SystemType, scores ResultScores) *Tournament {
	return &Tournament{
		system:         system,
		numberOfRounds: numberOfRounds,
		players:        make(map[PlayerID]*Player),
		scores:         scores,
	}
}

// AddPlayer adds the given player to the tournament. A player with the same
// id as an existing one replaces it. Players can't join after the
// tournament has started.
func (tour *Tournament) AddPlayer(player *Player) error {
	id := player.Info.ID
	switch {
	case id == ByeID:
		return fmt.Errorf("add player %q: %w", player.Info.Name, ErrReservedID)
	case tour.HasStarted():
		return fmt.Errorf("add player %d: %w", id, ErrAlreadyStarted)
	}

	if old, found := tour.players[id]; found {
		logrus.WithFields(logrus.Fields{
			"player": id,
			"old":    old.Info.Name,
			"new":    player.Info.Name,
		}).Warn("Replacing player with the same id")
	}

	tour.players[id] = player
	return nil
}

// AddPlayers adds all the given players to the tournament, stopping at the
// first player which can't be added.
func (tour *Tournament) AddPlayers(players ...*Player) error {
	for _, player := range players {
		if err := tour.AddPlayer(player); err != nil {
			return err
		}
	}

	return nil
}

// Withdraw takes the given player out of the tournament. Before the
// tournament starts the player is simply removed, afterwards the player is
// kept for the standings and no longer paired.
func (tour *Tournament) Withdraw(id PlayerID) error {
	if _, found := tour.players[id]; !found {
		return fmt.Errorf("withdraw player %d: %w", id, ErrPlayerNotFound)
	}

	if !tour.HasStarted() {
		delete(tour.players, id)
		return nil
	}

	if tour.IsWithdrawn(id) {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"player": id,
		"round":  tour.currentRound,
	}).Debug("Withdrawing player")
	tour.withdrawn = append(tour.withdrawn, Withdrawal{Player: id, Round: tour.currentRound})
	return nil
}

// IsWithdrawn reports whether the given player has left the tournament.
func (tour *Tournament) IsWithdrawn(id PlayerID) bool {
	for _, withdrawal := range tour.withdrawn {
		if withdrawal.Player == id {
			return true
		}
	}

	return false
}

// Start assigns the pairing numbers and moves the tournament to its first
// round. Pairing numbers are only ever assigned once, so calling Start on a
// started tournament does nothing.
func (tour *Tournament) Start() {
	if tour.HasStarted() {
		return
	}

	tour.assignPairingNumbers()
	tour.currentRound = 1

	logrus.WithFields(logrus.Fields{
		"players": len(tour.players),
		"system":  tour.system,
	}).Debug("Started tournament")
}

// assignPairingNumbers gives the strongest player pairing number 1 and the
// weakest pairing number N.
func (tour *Tournament) assignPairingNumbers() {
	players := slices.Collect(maps.Values(tour.players))
	slices.SortFunc(players, func(a, b *Player) int {
		return Compare(a.Info, b.Info)
	})

	number := uint16(len(players))
	for _, player := range players {
		player.PairingNumber = number
		number--
	}
}

// Pair pairs the current round with the tournament's pairing system,
// starting the tournament if needed. Pairing the same round again replaces
// its previous pairings.
func (tour *Tournament) Pair() ([]Pairing, error) {
	tour.Start()

	if tour.numberOfRounds > 0 && tour.currentRound > tour.numberOfRounds {
		return nil, fmt.Errorf("pair round %d: %w", tour.currentRound, ErrTournamentFinished)
	}

	system, err := pairingSystem(tour.system)
	if err != nil {
		return nil, fmt.Errorf("pair round %d: %w", tour.currentRound, err)
	}

	logrus.WithFields(logrus.Fields{
		"round":  tour.currentRound,
		"system": tour.system,
	}).Debug("Pairing round")

	pairings, err := system.PairRound(tour)
	if err != nil {
		return nil, fmt.Errorf("pair round %d: %w", tour.currentRound, err)
	}

	for _, pairing := range pairings {
		left, right := pairing.Players()
		if player, found := tour.players[left]; found && right != ByeID && player.Played(right) {
			logrus.WithFields(logrus.Fields{
				"round": tour.currentRound,
				"left":  left,
				"right": right,
			}).Debug("Players meet again")
		}
	}

	for len(tour.pairings) < tour.currentRound {
		tour.pairings = append(tour.pairings, nil)
	}

	tour.pairings[tour.currentRound-1] = pairings
	return slices.Clone(pairings), nil
}

// RecordResults applies the results of the current round to the players and
// moves the tournament to the next round. Every pairing of the round needs
// exactly one result. Nothing is changed if the results are rejected.
func (tour *Tournament) RecordResults(results []Result) error {
	if !tour.HasStarted() {
		return fmt.Errorf("record results: %w", ErrNotStarted)
	}

	round := tour.currentRound
	pairings, found := tour.Pairings(round)
	if !found {
		return fmt.Errorf("record results: round %d is not paired: %w", round, ErrResultMismatch)
	}

	if len(results) != len(pairings) {
		return fmt.Errorf(
			"record results: %d results for %d pairings: %w",
			len(results), len(pairings), ErrResultMismatch,
		)
	}

	type board struct{ left, right PlayerID }
	expected := make(map[board]Pairing, len(pairings))
	for _, pairing := range pairings {
		left, right := pairing.Players()
		expected[board{left, right}] = pairing
	}

	for _, result := range results {
		left, right := result.Pairing.Players()
		pairing, found := expected[board{left, right}]
		if !found || !pairing.Equal(result.Pairing) {
			return fmt.Errorf("record results: %s: %w", result.Pairing, ErrResultMismatch)
		}
		delete(expected, board{left, right})

		for _, id := range []PlayerID{left, right} {
			if _, found := tour.players[id]; id != ByeID && !found {
				return fmt.Errorf("record results: player %d: %w", id, ErrPlayerNotFound)
			}
		}
	}

	for _, result := range results {
		tour.applyResult(result)
	}

	logrus.WithField("round", round).Debug("Recorded results")
	return tour.NextRound()
}

func (tour *Tournament) applyResult(result Result) {
	pairing := result.Pairing
	left := tour.players[pairing.Left]

	if pairing.IsBye() {
		left.Score += tour.scores.Win
		left.HasBye = true
		return
	}

	right := tour.players[*pairing.Right]
	leftPoints, rightPoints := tour.scores.Points(result.Outcome)

	left.Score += leftPoints
	right.Score += rightPoints

	switch result.Outcome {
	case LeftWins:
		left.Wins++
		right.Losses++
	case RightWins:
		left.Losses++
		right.Wins++
	default:
		left.Draws++
		right.Draws++
	}

	left.Opponents = append(left.Opponents, right.Info.ID)
	right.Opponents = append(right.Opponents, left.Info.ID)

	left.playColor(pairing.LeftColor)
	right.playColor(pairing.RightColor)
}

func (player *Player) playColor(color Color) {
	switch color {
	case White:
		player.ColorDifference++
	case Black:
		player.ColorDifference--
	default:
		return
	}

	player.ColorHistory = append(player.ColorHistory, color)
}

// NextRound moves the tournament to its next round.
func (tour *Tournament) NextRound() error {
	if !tour.HasStarted() {
		return fmt.Errorf("next round: %w", ErrNotStarted)
	}

	tour.currentRound++
	return nil
}

// ScoreGroups groups the players by their current score. Players are
// listed in ascending order of their ids inside each group.
func (tour *Tournament) ScoreGroups() ScoreGroups {
	groups := make(ScoreGroups)
	for _, player := range tour.Players() {
		groups[player.Score] = append(groups[player.Score], player.Info.ID)
	}

	return groups
}

// Player returns the player with the given id.
func (tour *Tournament) Player(id PlayerID) (*Player, bool) {
	player, found := tour.players[id]
	return player, found
}

// Players returns all the players of the tournament, in ascending order of
// their ids.
func (tour *Tournament) Players() []*Player {
	players := slices.Collect(maps.Values(tour.players))
	slices.SortFunc(players, func(a, b *Player) int {
		return cmp.Compare(a.Info.ID, b.Info.ID)
	})
	return players
}

// PlayersByRank returns all the players of the tournament, strongest first.
// Before the tournament starts, the order is the one Start will assign the
// pairing numbers in.
func (tour *Tournament) PlayersByRank() []*Player {
	players := slices.Collect(maps.Values(tour.players))
	if tour.HasStarted() {
		slices.SortFunc(players, func(a, b *Player) int {
			return cmp.Compare(a.PairingNumber, b.PairingNumber)
		})
	} else {
		slices.SortFunc(players, func(a, b *Player) int {
			return Compare(b.Info, a.Info)
		})
	}

	return players
}

// activePlayers returns the players who haven't withdrawn, strongest first.
func (tour *Tournament) activePlayers() []*Player {
	return slices.DeleteFunc(tour.PlayersByRank(), func(player *Player) bool {
		return tour.IsWithdrawn(player.Info.ID)
	})
}

// Pairings returns the pairings of the given round.
func (tour *Tournament) Pairings(round int) ([]Pairing, bool) {
	if round < 1 || round > len(tour.pairings) || tour.pairings[round-1] == nil {
		return nil, false
	}

	return slices.Clone(tour.pairings[round-1]), true
}

// CurrentRound returns the round being played, or zero if the tournament
// hasn't started yet.
func (tour *Tournament) CurrentRound() int {
	return tour.currentRound
}

// HasStarted reports whether the tournament has started.
func (tour *Tournament) HasStarted() bool {
	return tour.currentRound > 0
}

// PlayerCount returns the number of players, including withdrawn ones.
func (tour *Tournament) PlayerCount() int {
	return len(tour.players)
}

// System returns the tournament's pairing system.
func (tour *Tournament) System() SystemType {
	return tour.system
}

// NumberOfRounds returns the number of rounds, zero if there is no limit.
func (tour *Tournament) NumberOfRounds() int {
	return tour.numberOfRounds
}

// ResultScores returns the points given for a win, a draw, and a loss.
func (tour *Tournament) ResultScores() ResultScores {
	return tour.scores
}

// Withdrawn returns the players who left after the start, in the order
// they left.
func (tour *Tournament) Withdrawn() []Withdrawal {
	return slices.Clone(tour.withdrawn)
}
