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

import "errors"

var (
	// ErrSystemNotImplemented is returned when the configured pairing
	// system has no algorithm for the round being paired.
	ErrSystemNotImplemented = errors.New("pairing system not implemented")

	ErrInvalidSystem = errors.New("invalid pairing system")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidTitle  = errors.New("invalid title")

	ErrPlayerNotFound = errors.New("player not found")
	ErrReservedID     = errors.New("player id 0 is reserved for byes")

	ErrAlreadyStarted     = errors.New("tournament has already started")
	ErrNotStarted         = errors.New("tournament has not started")
	ErrTournamentFinished = errors.New("all rounds have been played")

	// ErrResultMismatch is returned when recorded results don't line up
	// with the pairings of the round they are recorded for.
	ErrResultMismatch = errors.New("results don't match the round's pairings")
)
