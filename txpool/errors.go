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

import "errors"

var (
	ErrGasPriceBelowBaseFee         = errors.New("txpool: gas price below base fee")
	ErrMaxFeePerGasBelowBaseFee     = errors.New("txpool: max fee per gas below base fee")
	ErrPriorityFeeGreaterThanMaxFee = errors.New("txpool: priority fee greater than max fee")

	ErrAlreadyKnown          = errors.New("txpool: transaction already known")
	ErrMaxTxSizeExceeded     = errors.New("txpool: tx size exceeds max_tx_size")
	ErrMaxBlobTxSizeExceeded = errors.New("txpool: tx size exceeds max_blob_tx_size")
	ErrTxGasLimitExceeded    = errors.New("txpool: tx gas limit exceeds cfg.gas_limit")
	ErrNonceGap              = errors.New("txpool: nonce gap exceeds pending_sender")
	ErrMinBlobPriorityFee    = errors.New("txpool: priority fee below min_blob_tx_priority_fee")
	ErrBlobBaseFeeTooLow     = errors.New("txpool: max_fee_per_blob_gas below current blob base fee")
)
