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

// Package common holds the fixed-size value types shared by every layer of
// the core: block/tx hashes and addresses.
package common

import (
	"encoding/hex"
	"fmt"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte Keccak-256 digest, used as the identifier for blocks,
// headers and transactions.
type Hash [HashLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) String() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) IsZero() bool { return h == Hash{} }

// Address is a 20-byte account/contract address.
type Address [AddressLength]byte

func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// EmptyUncleHash is keccak256(rlp([])), the well-known hash of an empty
// ommers list required by post-merge headers.
var EmptyUncleHash = Hash{0x1d, 0xcc, 0x4d, 0xe8, 0xde, 0xc7, 0x5d, 0x7a, 0xab, 0x85, 0xb5, 0x67, 0xb6, 0xcc, 0xd4, 0x1a, 0xd3, 0x12, 0x45, 0x1b, 0x94, 0x8a, 0x74, 0x13, 0xf0, 0xa1, 0x42, 0xfd, 0x40, 0xd4, 0x93, 0x47}

// DifferentInstance is a sentinel identity check used by BlockTreeOverlay
// to refuse being constructed from a base and overlay backed by the same
// underlying instance.
type DifferentInstance interface {
	InstanceID() string
}

// ErrSameInstance is returned when base and overlay share an identity.
var ErrSameInstance = fmt.Errorf("shared state: base and overlay must be distinct instances")
