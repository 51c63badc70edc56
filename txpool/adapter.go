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
	"github.com/evmts/corechain/core/types"
)

// TxAdapter wraps a core/types.Transaction to satisfy the Transaction
// interface the admission/ordering core dispatches to.
type TxAdapter struct {
	Tx *types.Transaction
}

func Adapt(tx *types.Transaction) TxAdapter { return TxAdapter{Tx: tx} }

func (a TxAdapter) Hash() common.Hash { return a.Tx.Hash() }

func (a TxAdapter) TxType() byte        { return a.Tx.TxType() }
func (a TxAdapter) GetNonce() uint64    { return a.Tx.GetNonce() }
func (a TxAdapter) GetGasLimit() uint64 { return a.Tx.GetGasLimit() }
func (a TxAdapter) EncodedSize() int    { return a.Tx.EncodedSize() }
func (a TxAdapter) IsBlob() bool        { return a.Tx.IsBlob() }
func (a TxAdapter) BlobCount() int      { return a.Tx.BlobCount() }
func (a TxAdapter) IsLegacy() bool      { return a.Tx.TxType() == legacyTxTypeByte }

func (a TxAdapter) GasPriceOrFeeCap() *uint256.Int {
	if a.IsLegacy() {
		return a.Tx.GasPrice
	}
	return a.Tx.GasFeeCap
}

func (a TxAdapter) GasTipCap() *uint256.Int {
	if a.IsLegacy() {
		return a.Tx.GasPrice
	}
	return a.Tx.GasTipCap
}

func (a TxAdapter) MaxFeePerBlobGas() *uint256.Int {
	return a.Tx.MaxFeePerBlobGas
}
