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
	"fmt"
	"strings"
)

// Color is the side of the board a player is assigned for a game.
type Color uint8

const (
	ColorNone Color = iota
	White
	Black

	colorN
)

// ColorFromCode converts a numeric color code into a Color.
func ColorFromCode(code int) (Color, error) {
	if code < 0 || code >= int(colorN) {
		return ColorNone, fmt.Errorf("color from code %d: %w", code, ErrInvalidColor)
	}

	return Color(code), nil
}

// ParseColor parses the string representation of a Color.
func ParseColor(str string) (Color, error) {
	switch strings.ToLower(str) {
	case "", "none", "-":
		return ColorNone, nil
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return ColorNone, fmt.Errorf("parse color %q: %w", str, ErrInvalidColor)
	}
}

// Other returns the opposite color. ColorNone has no opposite.
func (color Color) Other() Color {
	switch color {
	case White:
		return Black
	case Black:
		return White
	default:
		return ColorNone
	}
}

func (color Color) String() string {
	switch color {
	case White:
		return "white"
	case Black:
		return "black"
	case ColorNone:
		return "none"
	default:
		return "?"
	}
}

func (color Color) MarshalText() ([]byte, error) {
	if color >= colorN {
		return nil, fmt.Errorf("marshal color %d: %w", uint8(color), ErrInvalidColor)
	}

	return []byte(color.String()), nil
}

func (color *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*color = parsed
	return nil
}

// PreferenceLevel is the strength of a player's color preference.
type PreferenceLevel uint8

const (
	PreferenceNone PreferenceLevel = iota
	PreferenceMild
	PreferenceStrong
	PreferenceAbsolute
)

func (level PreferenceLevel) String() string {
	switch level {
	case PreferenceNone:
		return "none"
	case PreferenceMild:
		return "mild"
	case PreferenceStrong:
		return "strong"
	case PreferenceAbsolute:
		return "absolute"
	default:
		return "?"
	}
}

// ColorPreference describes which color a player should get next and how
// strongly. Width is the size of the color imbalance behind an absolute
// preference, and zero for every other kind of preference.
type ColorPreference struct {
	Color Color
	Level PreferenceLevel
	Width uint8
}
