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

package txpool

import "fmt"

// TxHandlingOptions is a closed bitflag domain: every caller-supplied value
// must resolve to a combination of the flags below.
type TxHandlingOptions uint8

const (
	ManagedNonce TxHandlingOptions = 1 << iota
	PersistentBroadcast
	PreEIP155Signing
	AllowReplacingSignature

	allHandlingOptions = ManagedNonce | PersistentBroadcast | PreEIP155Signing | AllowReplacingSignature
)

// FromBits rejects any bit outside the closed domain.
func FromBits(bits uint8) (TxHandlingOptions, error) {
	if TxHandlingOptions(bits)&^allHandlingOptions != 0 {
		return 0, fmt.Errorf("txpool: invalid tx handling options bits %#x", bits)
	}
	return TxHandlingOptions(bits), nil
}

// Sanitize masks out unknown bits rather than rejecting them.
func Sanitize(bits uint8) TxHandlingOptions {
	return TxHandlingOptions(bits) & allHandlingOptions
}

// Has reports whether flag is set; an out-of-domain receiver always
// answers false (closed domain).
func (o TxHandlingOptions) Has(flag TxHandlingOptions) bool {
	if o&^allHandlingOptions != 0 {
		return false
	}
	return o&flag != 0
}
