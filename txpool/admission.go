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

// KnownTxChecker is the subset of the pool vtable the duplicate predicate
// dispatches to.
type KnownTxChecker interface {
	IsKnown(hash common.Hash) bool
	ContainsTx(hash common.Hash, txType byte) bool
	MarkKnownForCurrentScope(hash common.Hash)
}

// PrecheckDuplicate rejects a transaction already seen: hash cache first,
// then the typed container; a first-time miss marks the hash known for the
// remainder of this admission scope.
func PrecheckDuplicate(pool KnownTxChecker, tx Transaction) error {
	hash := tx.Hash()
	if pool.IsKnown(hash) {
		return ErrAlreadyKnown
	}
	if pool.ContainsTx(hash, tx.TxType()) {
		return ErrAlreadyKnown
	}
	pool.MarkKnownForCurrentScope(hash)
	return nil
}

// FitsSizeLimits rejects a transaction whose encoded size exceeds the
// configured cap, blob and non-blob transactions against separate limits.
func FitsSizeLimits(tx Transaction, cfg Config) error {
	limit := cfg.MaxTxSize
	if tx.IsBlob() {
		if cfg.MaxBlobTxSize > 0 {
			limit = cfg.MaxBlobTxSize
		}
		if tx.EncodedSize() > limit {
			return ErrMaxBlobTxSizeExceeded
		}
		return nil
	}
	if tx.EncodedSize() > limit {
		return ErrMaxTxSizeExceeded
	}
	return nil
}

// FitsGasLimit rejects a transaction whose gas limit exceeds the configured
// cap, when one is set.
func FitsGasLimit(tx Transaction, cfg Config) error {
	if cfg.GasLimit == nil {
		return nil
	}
	if tx.GetGasLimit() > *cfg.GasLimit {
		return ErrTxGasLimitExceeded
	}
	return nil
}

// EnforceNonceGap rejects a transaction whose nonce would leave a gap past
// the sender's already-queued transactions. The distance is computed by
// subtraction on the accept branch to avoid wraparound at near-max nonce
// values.
func EnforceNonceGap(txNonce, currentNonce, pendingSender uint64) error {
	if txNonce <= currentNonce {
		return nil
	}
	if txNonce-currentNonce > pendingSender {
		return ErrNonceGap
	}
	return nil
}

// EnforceMinPriorityFeeForBlobs rejects a blob transaction whose priority
// fee or blob fee cap falls below the configured floors; a no-op for
// non-blob transactions.
func EnforceMinPriorityFeeForBlobs(tx Transaction, cfg Config, currentBlobBaseFee *uint256.Int) error {
	if !tx.IsBlob() {
		return nil
	}
	if cfg.MinBlobTxPriorityFee > 0 {
		min := uint256.NewInt(cfg.MinBlobTxPriorityFee)
		if tx.GasTipCap().Lt(min) {
			return ErrMinBlobPriorityFee
		}
	}
	if cfg.CurrentBlobBaseFeeRequired && currentBlobBaseFee != nil {
		if tx.MaxFeePerBlobGas().Lt(currentBlobBaseFee) {
			return ErrBlobBaseFeeTooLow
		}
	}
	return nil
}

// AdmissionContext bundles the per-sender state the pipeline needs beyond
// the transaction and config.
type AdmissionContext struct {
	CurrentNonce       uint64
	PendingSender      uint64
	CurrentBlobBaseFee *uint256.Int
}

// RunAdmissionPipeline runs duplicate -> size -> gas -> nonce-gap ->
// blob-fee in order, short-circuiting on the first failing predicate.
func RunAdmissionPipeline(pool KnownTxChecker, tx Transaction, cfg Config, ctx AdmissionContext) error {
	if err := PrecheckDuplicate(pool, tx); err != nil {
		return err
	}
	if err := FitsSizeLimits(tx, cfg); err != nil {
		return err
	}
	if err := FitsGasLimit(tx, cfg); err != nil {
		return err
	}
	if err := EnforceNonceGap(tx.GetNonce(), ctx.CurrentNonce, ctx.PendingSender); err != nil {
		return err
	}
	if err := EnforceMinPriorityFeeForBlobs(tx, cfg, ctx.CurrentBlobBaseFee); err != nil {
		return err
	}
	return nil
}

// ResultForError maps an admission sentinel error to its AcceptTxResult
// catalog entry; unmapped errors fall back to Invalid.
func ResultForError(err error) AcceptTxResult {
	switch err {
	case nil:
		return Accepted
	case ErrAlreadyKnown:
		return AlreadyKnown
	case ErrMaxTxSizeExceeded, ErrMaxBlobTxSizeExceeded:
		return MaxTxSizeExceeded
	case ErrTxGasLimitExceeded:
		return GasLimitReached
	case ErrNonceGap:
		return NonceTooHigh
	case ErrMinBlobPriorityFee, ErrBlobBaseFeeTooLow:
		return FeeTooLow
	case ErrGasPriceBelowBaseFee, ErrMaxFeePerGasBelowBaseFee:
		return FeeTooLow
	case ErrPriorityFeeGreaterThanMaxFee:
		return Invalid
	default:
		return Invalid
	}
}
