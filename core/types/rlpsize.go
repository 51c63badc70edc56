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

package types

import "github.com/holiman/uint256"

// rlpIntLen returns the RLP-encoded length of x as an unsigned integer:
// zero encodes as a single empty-string byte, values below 0x80 are a
// single inline byte, everything else is a length-prefixed byte string of
// its minimal big-endian representation.
func rlpIntLen(x uint64) int {
	if x == 0 {
		return 1
	}
	if x < 0x80 {
		return 1
	}
	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}
	return 1 + n
}

// rlpUint256Len is rlpIntLen generalized to 256-bit values.
func rlpUint256Len(x *uint256.Int) int {
	if x == nil || x.IsZero() {
		return 1
	}
	n := (x.BitLen() + 7) / 8
	if n == 1 && x.Uint64() < 0x80 {
		return 1
	}
	return 1 + n
}

// rlpBytesLen is the RLP-encoded length of a byte string.
func rlpBytesLen(b []byte) int {
	if len(b) == 1 && b[0] < 0x80 {
		return 1
	}
	if len(b) <= 55 {
		return 1 + len(b)
	}
	return 1 + lenOfLen(len(b)) + len(b)
}

// rlpListLen wraps a payload of the given total length in an RLP list
// header.
func rlpListLen(payloadLen int) int {
	if payloadLen <= 55 {
		return 1 + payloadLen
	}
	return 1 + lenOfLen(payloadLen) + payloadLen
}

func lenOfLen(n int) int {
	l := 0
	for n > 0 {
		l++
		n >>= 8
	}
	return l
}
