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

// Package stats estimates playing strength from game results.
package stats

import "math"

// Elo returns the rating difference implied by the given number of wins,
// draws, and losses, together with the bounds of its 95% confidence
// interval.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / N // measured win probability
	d := float64(ds) / N // measured draw probability
	l := float64(ls) / N // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// Performance returns the performance rating of a player who scored the
// given results against opponents of the given average rating. A perfect
// or a zero score is capped at 800 points away from the average.
func Performance(average float64, ws, ds, ls int) float64 {
	N := ws + ds + ls
	switch {
	case N == 0:
		return average
	case ws == N:
		return average + 800
	case ls == N:
		return average - 800
	}

	_, mu, _ := Elo(ws, ds, ls)
	return average + mu
}

// ExpectedScore returns the score a player is expected to make against an
// opponent rated diff points lower.
func ExpectedScore(diff float64) float64 {
	return 1 / (1 + math.Pow(10, -diff/400))
}

// scoreToElo converts an expected score into a rating difference. Scores
// outside (0, 1) have no finite difference and are mapped to zero.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
