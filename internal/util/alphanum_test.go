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

package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"round-2", "round-10", -1},
		{"round-10", "round-2", 1},
		{"open", "open", 0},
		{"open", "open-2", -1},
		{"a10b", "a10c", -1},
		{"club9", "club09", 1},
		{"", "a", -1},
	}

	for _, test := range tests {
		t.Run(test.a+" "+test.b, func(t *testing.T) {
			assert.Equal(t, test.want, AlphanumCompare(test.a, test.b))
		})
	}
}

func TestAlphanumSort(t *testing.T) {
	names := []string{"club-10", "blitz", "club-2", "club-1", "Blitz"}
	slices.SortFunc(names, AlphanumCompare)
	assert.Equal(t, []string{"Blitz", "blitz", "club-1", "club-2", "club-10"}, names)
}
