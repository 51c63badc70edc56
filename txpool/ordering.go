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

	"github.com/evmts/corechain/common/math"
)

// EffectivePriorityFee computes the tip a transaction actually pays at the
// given base fee. eip1559Active selects the dynamic-fee branch; legacy
// transactions always
// use the legacy branch regardless of activation (their gas_price is both
// GasPriceOrFeeCap and GasTipCap per the adapter).
func EffectivePriorityFee(tx Transaction, baseFee *uint256.Int, eip1559Active bool) (*uint256.Int, error) {
	if tx.IsLegacy() || !eip1559Active {
		gasPrice := tx.GasPriceOrFeeCap()
		if gasPrice.Lt(baseFee) {
			return nil, ErrGasPriceBelowBaseFee
		}
		return new(uint256.Int).Sub(gasPrice, baseFee), nil
	}

	maxFee := tx.GasPriceOrFeeCap()
	maxPriority := tx.GasTipCap()
	if maxFee.Lt(baseFee) {
		return nil, ErrMaxFeePerGasBelowBaseFee
	}
	if maxPriority.Gt(maxFee) {
		return nil, ErrPriorityFeeGreaterThanMaxFee
	}
	headroom := new(uint256.Int).Sub(maxFee, baseFee)
	if maxPriority.Lt(headroom) {
		return new(uint256.Int).Set(maxPriority), nil
	}
	return headroom, nil
}

// resolvedFees normalizes legacy and dynamic-fee transactions onto a common
// (max_fee, max_priority) pair: a legacy transaction's single gas price
// stands in for both.
func resolvedFees(tx Transaction) (maxFee, maxPriority *uint256.Int) {
	if tx.IsLegacy() {
		gp := tx.GasPriceOrFeeCap()
		return gp, gp
	}
	return tx.GasPriceOrFeeCap(), tx.GasTipCap()
}

// effectiveGasPrice computes min(max_fee, base_fee + max_priority).
func effectiveGasPrice(maxFee, maxPriority, baseFee *uint256.Int) *uint256.Int {
	sum, overflow := new(uint256.Int).AddOverflow(baseFee, maxPriority)
	if overflow {
		return new(uint256.Int).Set(maxFee)
	}
	if sum.Gt(maxFee) {
		return new(uint256.Int).Set(maxFee)
	}
	return sum
}

// CompareFeeMarketPriority orders two transactions by fee-market priority,
// returning -1/0/+1 with -1 meaning x sorts before y. When eip1559Active is
// false, this compares gas price (or max fee per gas, as resolved)
// descending only.
func CompareFeeMarketPriority(x, y Transaction, baseFee *uint256.Int, eip1559Active bool) int {
	xMaxFee, xPriority := resolvedFees(x)
	yMaxFee, yPriority := resolvedFees(y)

	if !eip1559Active {
		return cmpDescending(xMaxFee, yMaxFee)
	}

	xEff := effectiveGasPrice(xMaxFee, xPriority, baseFee)
	yEff := effectiveGasPrice(yMaxFee, yPriority, baseFee)

	if c := cmpDescending(xEff, yEff); c != 0 {
		return c
	}
	return cmpDescending(xMaxFee, yMaxFee)
}

func cmpDescending(a, b *uint256.Int) int {
	switch {
	case a.Gt(b):
		return -1
	case a.Lt(b):
		return 1
	default:
		return 0
	}
}

// CompareReplacedTransactionByFee decides whether a replacement transaction
// bumps its predecessor's fees enough to evict it: -1 "new replaces old",
// +1 "keep old", 0 undecided.
func CompareReplacedTransactionByFee(newTx, oldTx Transaction) int {
	if newTx == oldTx {
		return 0
	}
	if newTx.IsLegacy() && oldTx.IsLegacy() {
		oldPrice := oldTx.GasPriceOrFeeCap()
		newPrice := newTx.GasPriceOrFeeCap()
		bump := new(uint256.Int).Div(oldPrice, uint256.NewInt(10))
		threshold := new(uint256.Int).Add(oldPrice, bump)
		if newPrice.Gt(threshold) {
			return -1
		}
		return 1
	}

	oldMaxFee, oldPriority := resolvedFees(oldTx)
	newMaxFee, newPriority := resolvedFees(newTx)

	feeThreshold := bumpedThreshold(oldMaxFee)
	priorityThreshold := bumpedThreshold(oldPriority)

	if newMaxFee.Lt(feeThreshold) || newPriority.Lt(priorityThreshold) {
		return 1
	}
	return -1
}

func bumpedThreshold(v *uint256.Int) *uint256.Int {
	tenth := new(uint256.Int).Div(v, uint256.NewInt(10))
	return new(uint256.Int).Add(v, tenth)
}

// CompareReplacedBlobTransactionByFee applies the stricter blob replacement
// rule: identical -> 0; otherwise requires non-decreasing blob count and at
// least a 2x bump on every fee field.
func CompareReplacedBlobTransactionByFee(newTx, oldTx Transaction) int {
	if newTx == oldTx {
		return 0
	}
	if newTx.BlobCount() < oldTx.BlobCount() {
		return 1
	}

	newMaxFee, newPriority := resolvedFees(newTx)
	oldMaxFee, oldPriority := resolvedFees(oldTx)
	newBlobFee := newTx.MaxFeePerBlobGas()
	oldBlobFee := oldTx.MaxFeePerBlobGas()

	if !atLeastDouble(newMaxFee, oldMaxFee) ||
		!atLeastDouble(newPriority, oldPriority) ||
		!atLeastDouble(newBlobFee, oldBlobFee) {
		return 1
	}
	return -1
}

func atLeastDouble(newVal, oldVal *uint256.Int) bool {
	doubled, overflow := new(uint256.Int).MulOverflow(oldVal, uint256.NewInt(2))
	if overflow {
		return false
	}
	return !newVal.Lt(doubled)
}

// CalculateBaseFeeThreshold computes floor(base_fee*percent/100), falling
// back to floor(base_fee/100)*percent on overflow and saturating to the
// uint256 max if that still overflows.
func CalculateBaseFeeThreshold(baseFee *uint256.Int, percent uint64) *uint256.Int {
	p := uint256.NewInt(percent)
	hundred := uint256.NewInt(100)

	if result, ok := math.CheckedMulDiv256(baseFee, p, hundred); ok {
		return result
	}

	quotient := new(uint256.Int).Div(baseFee, hundred)
	result, overflow := new(uint256.Int).MulOverflow(quotient, p)
	if overflow {
		return new(uint256.Int).Set(math.MaxUint256)
	}
	return result
}

// CalculatePersistentBroadcastQuota computes
// min(floor(percent*pool_size/100)+1, pool_size), zero when either input is
// zero.
func CalculatePersistentBroadcastQuota(poolSize int, percent uint64) int {
	if poolSize <= 0 || percent == 0 {
		return 0
	}
	quota := int(percent)*poolSize/100 + 1
	if quota > poolSize {
		return poolSize
	}
	return quota
}
