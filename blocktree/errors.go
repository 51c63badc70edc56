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

// Package blocktree implements the canonical-chain map and orphan resolver
// on top of a block store.
package blocktree

import "errors"

var (
	ErrBlockNotFound       = errors.New("blocktree: block not found")
	ErrCannotSetOrphanHead = errors.New("blocktree: cannot set orphan as head")
	ErrChainDiscontinuous  = errors.New("blocktree: canonical walk is not contiguous")
)
