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
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare compares two strings in natural order, so that "round-2"
// comes before "round-10". It returns a negative number if a comes first,
// a positive number if b comes first, and zero if the strings are equal.
func AlphanumCompare(a, b string) int {
	chunks_a := chunkify(a)
	chunks_b := chunkify(b)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		aInt, aErr := strconv.Atoi(chunks_a[i])
		bInt, bErr := strconv.Atoi(chunks_b[i])

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil {
			if c := cmp.Compare(aInt, bInt); c != 0 {
				return c
			}

			continue
		}

		if c := strings.Compare(chunks_a[i], chunks_b[i]); c != 0 {
			return c
		}
	}

	// One string is a prefix of the other, chunk-wise.
	if c := cmp.Compare(len(chunks_a), len(chunks_b)); c != 0 {
		return c
	}

	// Numerically equal chunks like "01" and "1" still need an order.
	return strings.Compare(a, b)
}
