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

// Package rlpx covers two wire preliminaries of the devp2p RLPx handshake:
// the Snappy uncompressed-length validator and the Hello capability
// negotiator.
package rlpx

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPayload    = errors.New("rlpx: empty snappy payload")
	ErrTruncatedLength = errors.New("rlpx: truncated snappy length header")
	ErrLengthOverflow  = errors.New("rlpx: snappy length header overflow")

	ErrCapabilityValidation     = errors.New("rlpx: invalid capability")
	ErrDuplicateCapabilitySpace = errors.New("rlpx: duplicate capability with different message space")
	ErrMessageIDAllocation      = errors.New("rlpx: message id allocation overflow")
)

// LengthExceededError reports a decoded length over RlpxMaxSnappyUncompressedLength.
type LengthExceededError struct {
	Actual uint64
	Max    uint64
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("rlpx: snappy length %d exceeds max %d", e.Actual, e.Max)
}
