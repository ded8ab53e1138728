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

// PairingSystem pairs the current round of a tournament.
type PairingSystem interface {
	PairRound(tour *Tournament) ([]Pairing, error)
}

// SystemType selects the pairing system used by a tournament.
type SystemType uint8

const (
	BergerTable SystemType = iota
	DutchSwiss
	DubovSwiss
	BursteinSwiss
	Lim
	NoSystem

	systemN
)

var systemNames = [systemN]string{
	BergerTable:   "round-robin",
	DutchSwiss:    "dutch",
	DubovSwiss:    "dubov",
	BursteinSwiss: "burstein",
	Lim:           "lim",
	NoSystem:      "none",
}

// ParseSystem returns the SystemType with the given name. The empty string
// selects the round-robin system.
func ParseSystem(name string) (SystemType, error) {
	switch name = strings.ToLower(name); name {
	case "", "berger":
		return BergerTable, nil
	case "swiss":
		return DutchSwiss, nil
	}

	for system, systemName := range systemNames {
		if name == systemName {
			return SystemType(system), nil
		}
	}

	return NoSystem, fmt.Errorf("parse system: %w %q", ErrInvalidSystem, name)
}

// pairingSystem returns the implementation of the given SystemType.
func pairingSystem(system SystemType) (PairingSystem, error) {
	switch system {
	case BergerTable:
		return &RoundRobin{}, nil
	case DutchSwiss:
		return &Dutch{}, nil
	case DubovSwiss, BursteinSwiss, Lim, NoSystem:
		return nil, fmt.Errorf("%s: %w", system, ErrSystemNotImplemented)
	default:
		return nil, fmt.Errorf("system %d: %w", uint8(system), ErrInvalidSystem)
	}
}

func (system SystemType) String() string {
	if system >= systemN {
		return "?"
	}

	return systemNames[system]
}

func (system SystemType) MarshalText() ([]byte, error) {
	if system >= systemN {
		return nil, fmt.Errorf("marshal system %d: %w", uint8(system), ErrInvalidSystem)
	}

	return []byte(system.String()), nil
}

func (system *SystemType) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}

	*system = parsed
	return nil
}
