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

package headervalidator

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

const (
	gasLimitBoundDivisor = 1024
	minGasLimit          = 5000
	baseFeeChangeDenom   = 8
	targetExcessBlobGas  = 786_432 // 6 blobs/block * 131072 blob gas per blob
)

// Validate checks header against its parent, identified by parentHash (the
// hash is always supplied by a trusted external helper, never recomputed
// here). Every failure returns a *ValidationError carrying
// field/expected/actual for telemetry.
func Validate(header *types.Header, parentHash common.Hash, parent *types.Header) error {
	if err := checkNumber(header, parent); err != nil {
		return err
	}
	if err := checkGasUsed(header); err != nil {
		return err
	}
	if err := checkGasLimitAdjustment(header, parent); err != nil {
		return err
	}
	if err := checkBaseFee(header, parent); err != nil {
		return err
	}
	if err := checkExcessBlobGas(header, parent); err != nil {
		return err
	}
	if err := checkTimestamp(header, parent); err != nil {
		return err
	}
	if err := checkExtraData(header); err != nil {
		return err
	}
	if err := checkPostMerge(header); err != nil {
		return err
	}
	return checkParentHash(header, parentHash)
}

func checkNumber(header, parent *types.Header) error {
	if header.Number < 1 {
		return fieldErr("number", "number must be >= 1", "1", fmt.Sprint(header.Number))
	}
	if header.Number != parent.Number+1 {
		return fieldErr("number", "number must be parent.number + 1", fmt.Sprint(parent.Number+1), fmt.Sprint(header.Number))
	}
	return nil
}

func checkGasUsed(header *types.Header) error {
	if header.GasUsed > header.GasLimit {
		return fieldErr("gasUsed", "gasUsed must be <= gasLimit", fmt.Sprint(header.GasLimit), fmt.Sprint(header.GasUsed))
	}
	return nil
}

func checkGasLimitAdjustment(header, parent *types.Header) error {
	var diff uint64
	if header.GasLimit > parent.GasLimit {
		diff = header.GasLimit - parent.GasLimit
	} else {
		diff = parent.GasLimit - header.GasLimit
	}
	bound := parent.GasLimit / gasLimitBoundDivisor
	if diff >= bound {
		return fieldErr("gasLimit", "gas limit adjustment out of bound", fmt.Sprintf("< %d", bound), fmt.Sprint(diff))
	}
	if header.GasLimit < minGasLimit {
		return fieldErr("gasLimit", "gas limit below minimum", fmt.Sprint(minGasLimit), fmt.Sprint(header.GasLimit))
	}
	return nil
}

// checkBaseFee recomputes the header's expected base fee per EIP-1559 and
// rejects any mismatch.
func checkBaseFee(header, parent *types.Header) error {
	if parent.BaseFeePerGas == nil {
		return nil // pre-EIP-1559 parent; nothing to recompute against
	}
	parentTarget := parent.GasLimit / 2
	var expected *uint256.Int

	switch {
	case parent.GasUsed == parentTarget:
		expected = new(uint256.Int).Set(parent.BaseFeePerGas)
	case parent.GasUsed > parentTarget:
		usedDelta := uint256.NewInt(parent.GasUsed - parentTarget)
		delta := new(uint256.Int).Mul(parent.BaseFeePerGas, usedDelta)
		delta.Div(delta, uint256.NewInt(parentTarget))
		delta.Div(delta, uint256.NewInt(baseFeeChangeDenom))
		if delta.IsZero() {
			delta = uint256.NewInt(1)
		}
		expected = new(uint256.Int).Add(parent.BaseFeePerGas, delta)
	default:
		targetDelta := uint256.NewInt(parentTarget - parent.GasUsed)
		delta := new(uint256.Int).Mul(parent.BaseFeePerGas, targetDelta)
		delta.Div(delta, uint256.NewInt(parentTarget))
		delta.Div(delta, uint256.NewInt(baseFeeChangeDenom))
		expected = new(uint256.Int).Sub(parent.BaseFeePerGas, delta)
	}

	if header.BaseFeePerGas == nil || !header.BaseFeePerGas.Eq(expected) {
		actual := "nil"
		if header.BaseFeePerGas != nil {
			actual = header.BaseFeePerGas.String()
		}
		return fieldErr("baseFeePerGas", "base fee does not match EIP-1559 recomputation", expected.String(), actual)
	}
	return nil
}

// checkExcessBlobGas recomputes excess blob gas per EIP-4844 and rejects
// any mismatch.
func checkExcessBlobGas(header, parent *types.Header) error {
	if header.ExcessBlobGas == nil {
		return nil // pre-Cancun; field not yet activated
	}
	var parentExcess, parentUsed uint64
	if parent.ExcessBlobGas != nil {
		parentExcess = *parent.ExcessBlobGas
	}
	if parent.BlobGasUsed != nil {
		parentUsed = *parent.BlobGasUsed
	}

	var expected uint64
	if parentExcess+parentUsed >= targetExcessBlobGas {
		expected = parentExcess + parentUsed - targetExcessBlobGas
	}

	if *header.ExcessBlobGas != expected {
		return fieldErr("excessBlobGas", "excess blob gas does not match EIP-4844 recomputation", fmt.Sprint(expected), fmt.Sprint(*header.ExcessBlobGas))
	}
	return nil
}

func checkTimestamp(header, parent *types.Header) error {
	if header.Timestamp <= parent.Timestamp {
		return fieldErr("timestamp", "timestamp must be strictly greater than parent", fmt.Sprintf("> %d", parent.Timestamp), fmt.Sprint(header.Timestamp))
	}
	return nil
}

func checkExtraData(header *types.Header) error {
	if len(header.ExtraData) > 32 {
		return fieldErr("extraData", "extra data exceeds 32 bytes", "<= 32", fmt.Sprint(len(header.ExtraData)))
	}
	return nil
}

func checkPostMerge(header *types.Header) error {
	if header.Difficulty != nil && !header.Difficulty.IsZero() {
		return fieldErr("difficulty", "post-merge difficulty must be zero", "0", header.Difficulty.String())
	}
	if header.Nonce != ([8]byte{}) {
		return fieldErr("nonce", "post-merge nonce must be zero", "0x0000000000000000", fmt.Sprintf("%x", header.Nonce))
	}
	if header.OmmersHash != common.EmptyUncleHash {
		return fieldErr("ommersHash", "post-merge ommers hash must be the empty-list hash", common.EmptyUncleHash.String(), header.OmmersHash.String())
	}
	return nil
}

func checkParentHash(header *types.Header, parentHash common.Hash) error {
	if header.ParentHash != parentHash {
		return fieldErr("parentHash", "parent hash mismatch", parentHash.String(), header.ParentHash.String())
	}
	return nil
}
