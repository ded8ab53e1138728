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

// Package random generates reproducible test data for tournaments. It is
// not suitable for anything that needs unpredictable numbers.
package random

// Generator is a linear congruential generator. The zero value is a valid
// generator seeded with zero. A Generator is not safe for concurrent use,
// every goroutine should own its own.
type Generator struct {
	state uint64
}

// New creates a Generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{state: seed}
}

// Uint32 returns a random number in [0, 0x7fff].
func (g *Generator) Uint32() uint32 {
	next := uint32(g.state)*214013 + 2531011
	g.state = uint64(next)
	return (next >> 16) & 0x7fff
}

// Uint64 returns a random number in [0, 0x7fffffff].
func (g *Generator) Uint64() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return (g.state >> 32) & 0x7fffffff
}

// Intn returns a random number in [0, n). It panics if n is not positive.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}

	return int(g.Uint64() % uint64(n))
}
