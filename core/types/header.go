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

// Package types holds the block/header/transaction value types shared by
// every core component.
package types

import (
	"github.com/holiman/uint256"

	"github.com/evmts/corechain/common"
)

// Header is the consensus-relevant portion of a block.
//
// Fields introduced by later forks (BaseFeePerGas, BlobGasUsed,
// ExcessBlobGas, ParentBeaconBlockRoot) are pointers: nil means "not yet
// activated at this header".
type Header struct {
	ParentHash       common.Hash
	OmmersHash       common.Hash
	Beneficiary      common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogsBloom        [256]byte
	Difficulty       *uint256.Int
	Number           uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte
	MixHash          common.Hash
	Nonce            [8]byte
	BaseFeePerGas    *uint256.Int

	BlobGasUsed           *uint64
	ExcessBlobGas         *uint64
	ParentBeaconBlockRoot *common.Hash
}

// Block is the tuple (header, body, hash, size). Hash is always supplied
// by a trusted external helper (Keccak-256 over the header RLP) and never
// recomputed here.
type Block struct {
	Header *Header
	Body   Body
	Hash   common.Hash
	Size   int
}

// Body holds everything outside the header: transactions and ommer headers.
// Uncle/ommer support exists for pre-merge chains; post-merge headers are
// required to carry the empty ommers hash.
type Body struct {
	Transactions []*Transaction
	Ommers       []*Header
}

func (b *Block) Number() uint64 { return b.Header.Number }

func (b *Block) IsGenesis() bool {
	return b.Header.Number == 0
}
