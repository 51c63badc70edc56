// Copyright 2024 The Corechain Authors
// This file is part of Corechain.
//
// Corechain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corechain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Corechain. If not, see <http://www.gnu.org/licenses/>.

// Package chainmanager holds the fork-choice state machine: genesis
// initialization, canonical-head tracking, and the event bus that
// publishes state transitions.
package chainmanager

import "errors"

var (
	ErrGenesisAlreadyInitialized = errors.New("chainmanager: genesis already initialized")
	ErrGenesisNotInitialized     = errors.New("chainmanager: genesis not initialized")
	ErrInvalidGenesisBlock       = errors.New("chainmanager: invalid genesis block")
	ErrBlockNotFound             = errors.New("chainmanager: block not found")
	ErrGenesisMismatch           = errors.New("chainmanager: canonical chain does not resolve to genesis")
	ErrCanonicalChainInvalid     = errors.New("chainmanager: canonical chain is invalid")
)
