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

package rlpx

import "github.com/golang/snappy"

// RlpxMaxSnappyUncompressedLength is the 16 MiB cap on a frame's decoded
// Snappy payload.
const RlpxMaxSnappyUncompressedLength = 16 * 1024 * 1024

// MaxEncodedLenForCap returns the worst-case Snappy-compressed size of a
// payload at the uncompressed-length cap, using the reference codec's own
// bound rather than re-deriving the block-format overhead formula.
func MaxEncodedLenForCap() int {
	return snappy.MaxEncodedLen(RlpxMaxSnappyUncompressedLength)
}

// ValidateSnappyLength decodes the Snappy varint uncompressed-length
// prefix and enforces RlpxMaxSnappyUncompressedLength.
func ValidateSnappyLength(data []byte) (uint64, error) {
	value, err := decodeSnappyVarint(data)
	if err != nil {
		return 0, err
	}
	if value > RlpxMaxSnappyUncompressedLength {
		return 0, &LengthExceededError{Actual: value, Max: RlpxMaxSnappyUncompressedLength}
	}
	return value, nil
}

// decodeSnappyVarint reads the LEB128-style continuation-bit varint at the
// start of data: at most 5 bytes, the 5th carrying no continuation bit and
// no top-nibble bits (it would overflow a 32-bit length).
func decodeSnappyVarint(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyPayload
	}

	var value uint64
	limit := 5
	if len(data) < limit {
		limit = len(data)
	}

	for i := 0; i < limit; i++ {
		b := data[i]
		if i == 4 {
			if b&0xF0 != 0 {
				return 0, ErrLengthOverflow
			}
			value |= uint64(b) << (7 * i)
			return value, nil
		}
		value |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return value, nil
		}
	}
	return 0, ErrTruncatedLength
}
