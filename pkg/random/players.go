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

package random

import (
	_ "embed"
	"fmt"
	"strings"

	"laptudirm.com/x/pairer/pkg/tournament"
)

//go:embed names.txt
var namesFile string

var names = strings.Fields(namesFile)

// PlayerInfo creates a random player identity. The id is never the bye id
// but may collide with other random ids, use Players to get a set of
// distinct players.
func (g *Generator) PlayerInfo() tournament.PlayerInfo {
	id := tournament.PlayerID(g.Uint64())
	for id == tournament.ByeID {
		id = tournament.PlayerID(g.Uint64())
	}

	name := fmt.Sprintf("%s%d", names[g.Uint32()%uint32(len(names))], g.Uint32()%65535)
	rating := uint16(g.Uint32())%2000 + 1000

	// the code is always in range
	title, _ := tournament.TitleFromCode(int(g.Uint32() % 9))

	return tournament.PlayerInfo{
		ID:     id,
		Name:   name,
		Rating: rating,
		Title:  title,
	}
}

// Player creates a new random player.
func (g *Generator) Player() *tournament.Player {
	info := g.PlayerInfo()
	return tournament.NewPlayer(info.ID, info.Name, info.Title, info.Rating)
}

// Players creates n random players with distinct ids.
func (g *Generator) Players(n int) []*tournament.Player {
	players := make([]*tournament.Player, 0, n)
	seen := make(map[tournament.PlayerID]bool, n)

	for len(players) < n {
		player := g.Player()
		if seen[player.Info.ID] {
			continue
		}

		seen[player.Info.ID] = true
		players = append(players, player)
	}

	return players
}
