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

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElo(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		lo, mu, hi := Elo(0, 0, 0)
		assert.Zero(t, lo)
		assert.Zero(t, mu)
		assert.Zero(t, hi)
	})

	t.Run("even score", func(t *testing.T) {
		lo, mu, hi := Elo(10, 0, 10)
		assert.InDelta(t, 0, mu, 1e-9)
		assert.Less(t, lo, mu)
		assert.Greater(t, hi, mu)
		assert.InDelta(t, -lo, hi, 1e-9)
	})

	t.Run("three quarters", func(t *testing.T) {
		_, mu, _ := Elo(3, 0, 1)
		assert.InDelta(t, 190.85, mu, 0.01)
	})

	t.Run("draws count half", func(t *testing.T) {
		_, a, _ := Elo(2, 2, 0)
		_, b, _ := Elo(3, 0, 1)
		assert.InDelta(t, b, a, 1e-9)
	})
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		name       string
		average    float64
		ws, ds, ls int
		want       float64
	}{
		{"no games", 1500, 0, 0, 0, 1500},
		{"perfect", 1500, 5, 0, 0, 2300},
		{"zero", 1500, 0, 0, 5, 700},
		{"even", 1800, 1, 2, 1, 1800},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Performance(test.average, test.ws, test.ds, test.ls)
			assert.InDelta(t, test.want, got, 1e-9)
		})
	}
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(0), 1e-9)
	assert.InDelta(t, 1/1.1, ExpectedScore(400), 1e-9)
	assert.InDelta(t, 1, ExpectedScore(400)+ExpectedScore(-400), 1e-9)
}
