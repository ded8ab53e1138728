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

// Title is a chess title. Titles are ordered, and a higher title breaks
// rating ties in a player's favour.
type Title uint8

const (
	Untitled Title = iota
	WCM
	WFM
	CM
	WIM
	FM
	WGM
	IM
	GM

	TitleN
)

var titleNames = [TitleN]string{
	Untitled: "-",
	WCM:      "WCM",
	WFM:      "WFM",
	CM:       "CM",
	WIM:      "WIM",
	FM:       "FM",
	WGM:      "WGM",
	IM:       "IM",
	GM:       "GM",
}

// TitleFromCode converts a numeric title code into a Title.
func TitleFromCode(code int) (Title, error) {
	if code < 0 || code >= int(TitleN) {
		return Untitled, fmt.Errorf("title from code %d: %w", code, ErrInvalidTitle)
	}

	return Title(code), nil
}

// ParseTitle parses a title abbreviation like "GM" or "wfm". The empty
// string, "-", and "none" are parsed as Untitled.
func ParseTitle(str string) (Title, error) {
	switch str = strings.ToUpper(strings.TrimSpace(str)); str {
	case "", "-", "NONE":
		return Untitled, nil
	}

	for title, name := range titleNames {
		if name == str {
			return Title(title), nil
		}
	}

	return Untitled, fmt.Errorf("parse title %q: %w", str, ErrInvalidTitle)
}

func (title Title) String() string {
	if title >= TitleN {
		return "?"
	}

	return titleNames[title]
}

func (title Title) MarshalText() ([]byte, error) {
	if title >= TitleN {
		return nil, fmt.Errorf("marshal title %d: %w", uint8(title), ErrInvalidTitle)
	}

	if title == Untitled {
		return []byte("none"), nil
	}

	return []byte(title.String()), nil
}

func (title *Title) UnmarshalText(text []byte) error {
	parsed, err := ParseTitle(string(text))
	if err != nil {
		return err
	}

	*title = parsed
	return nil
}
