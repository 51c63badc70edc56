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

import (
	"github.com/holiman/uint256"

	"github.com/evmts/corechain/common"
)

// TxType is the EIP-2718 envelope type byte.
type TxType byte

const (
	LegacyTxType     TxType = 0x00
	AccessListTxType TxType = 0x01 // EIP-2930
	DynamicFeeTxType TxType = 0x02 // EIP-1559
	BlobTxType       TxType = 0x03 // EIP-4844
	SetCodeTxType    TxType = 0x04 // EIP-7702
)

// AccessTuple is one entry of an EIP-2930 access list.
type AccessTuple struct {
	Address     common.Address
	StorageKeys []common.Hash
}

// Authorization is one entry of an EIP-7702 authorization list.
type Authorization struct {
	ChainID uint64
	Address common.Address
	Nonce   uint64
	V       uint8
	R, S    *uint256.Int
}

// Transaction is the tagged union across all EIP-2718 envelope types. Only
// the fields relevant to Type are populated; callers must not assume
// zero-value fields of other variants carry meaning.
type Transaction struct {
	Type TxType

	ChainID *uint256.Int // absent (nil) for legacy pre-EIP-155
	Nonce   uint64

	// Legacy/2930 fee field.
	GasPrice *uint256.Int
	// 1559/4844/7702 fee fields.
	GasTipCap *uint256.Int // max priority fee per gas
	GasFeeCap *uint256.Int // max fee per gas

	Gas   uint64
	To    *common.Address // nil means contract creation
	Value *uint256.Int
	Data  []byte

	AccessList []AccessTuple // 2930, 1559, 4844, 7702

	// 4844 only.
	MaxFeePerBlobGas    *uint256.Int
	BlobVersionedHashes []common.Hash

	// 7702 only.
	AuthorizationList []Authorization

	// Signature.
	V, R, S *uint256.Int

	hash          common.Hash
	hashSet       bool
	encodedSize   int
	encodedSizeOK bool
}

// SetHash installs a precomputed hash. The core never recomputes a
// transaction's hash itself — it is always supplied by a trusted helper.
func (tx *Transaction) SetHash(h common.Hash) { tx.hash = h; tx.hashSet = true }

func (tx *Transaction) Hash() common.Hash {
	return tx.hash
}

func (tx *Transaction) TxType() byte { return byte(tx.Type) }

func (tx *Transaction) IsBlob() bool { return tx.Type == BlobTxType }

func (tx *Transaction) BlobCount() int { return len(tx.BlobVersionedHashes) }

func (tx *Transaction) GetNonce() uint64 { return tx.Nonce }

func (tx *Transaction) GetGasLimit() uint64 { return tx.Gas }

// EncodedSize is the RLP-encoded wire size used by the size admission
// predicate. It is computed structurally, without ever materializing the
// encoding.
func (tx *Transaction) EncodedSize() int {
	if tx.encodedSizeOK {
		return tx.encodedSize
	}
	n := tx.computeEncodedSize()
	tx.encodedSize, tx.encodedSizeOK = n, true
	return n
}

func (tx *Transaction) computeEncodedSize() int {
	payload := rlpIntLen(tx.Nonce)

	switch tx.Type {
	case LegacyTxType:
		payload += rlpUint256Len(tx.GasPrice)
	case AccessListTxType:
		payload += rlpIntLen(chainIDUint64(tx.ChainID))
		payload += rlpUint256Len(tx.GasPrice)
	default:
		payload += rlpIntLen(chainIDUint64(tx.ChainID))
		payload += rlpUint256Len(tx.GasTipCap)
		payload += rlpUint256Len(tx.GasFeeCap)
	}

	payload += rlpIntLen(tx.Gas)
	payload += toLen(tx.To)
	payload += rlpUint256Len(tx.Value)
	payload += rlpBytesLen(tx.Data)

	if tx.Type != LegacyTxType {
		payload += rlpAccessListLen(tx.AccessList)
	}

	if tx.Type == BlobTxType {
		payload += rlpUint256Len(tx.MaxFeePerBlobGas)
		payload += rlpHashListLen(tx.BlobVersionedHashes)
	}

	if tx.Type == SetCodeTxType {
		payload += rlpAuthorizationListLen(tx.AuthorizationList)
	}

	payload += rlpUint256Len(tx.V)
	payload += rlpUint256Len(tx.R)
	payload += rlpUint256Len(tx.S)

	size := rlpListLen(payload)
	if tx.Type != LegacyTxType {
		size = 1 + size // EIP-2718 envelope type byte
	}
	return size
}

func chainIDUint64(id *uint256.Int) uint64 {
	if id == nil {
		return 0
	}
	return id.Uint64()
}

func toLen(to *common.Address) int {
	if to == nil {
		return 1 // empty string
	}
	return rlpBytesLen(to.Bytes())
}

func rlpAccessListLen(list []AccessTuple) int {
	inner := 0
	for _, tuple := range list {
		addrLen := rlpBytesLen(tuple.Address.Bytes())
		keysPayload := 0
		for _, k := range tuple.StorageKeys {
			keysPayload += rlpBytesLen(k.Bytes())
		}
		keysLen := rlpListLen(keysPayload)
		inner += rlpListLen(addrLen + keysLen)
	}
	return rlpListLen(inner)
}

func rlpHashListLen(hashes []common.Hash) int {
	payload := 0
	for _, h := range hashes {
		payload += rlpBytesLen(h.Bytes())
	}
	return rlpListLen(payload)
}

func rlpAuthorizationListLen(list []Authorization) int {
	inner := 0
	for _, a := range list {
		tuplePayload := rlpIntLen(a.ChainID) + rlpBytesLen(a.Address.Bytes()) + rlpIntLen(a.Nonce) +
			rlpIntLen(uint64(a.V)) + rlpUint256Len(a.R) + rlpUint256Len(a.S)
		inner += rlpListLen(tuplePayload)
	}
	return rlpListLen(inner)
}
