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

import (
	"github.com/holiman/uint256"

	"github.com/evmts/corechain/common"
)

// Transaction is the admission/ordering core's view of a transaction,
// kept independent of any concrete transaction struct so the predicates
// and comparators below stay pure functions of the interface and the pool
// config. core/types.Transaction satisfies it via the adapter in
// adapter.go.
type Transaction interface {
	Hash() common.Hash
	TxType() byte
	GetNonce() uint64
	GetGasLimit() uint64
	EncodedSize() int
	IsBlob() bool
	BlobCount() int

	GasPriceOrFeeCap() *uint256.Int // legacy: gas_price; dynamic-fee: max_fee_per_gas
	GasTipCap() *uint256.Int        // dynamic-fee: max_priority_fee_per_gas; legacy: same as GasPriceOrFeeCap
	MaxFeePerBlobGas() *uint256.Int // blob only; nil otherwise

	IsLegacy() bool
}

const (
	legacyTxTypeByte = 0x00
)
