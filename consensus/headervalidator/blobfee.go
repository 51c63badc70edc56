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
)

const (
	minBlobGasPrice            = 1
	blobGasPriceUpdateFraction = 3_338_477 // Cancun EIP-4844 mainnet fraction
)

// FakeExponential approximates factor * e**(numerator/denominator) via the
// Taylor-series expansion from EIP-4844.
func FakeExponential(factor, denom *uint256.Int, numerator uint64) (*uint256.Int, error) {
	num := uint256.NewInt(numerator)
	output := uint256.NewInt(0)
	accum := new(uint256.Int)

	if _, overflow := accum.MulOverflow(factor, denom); overflow {
		return nil, fmt.Errorf("headervalidator: FakeExponential overflow in factor*denom")
	}

	divisor := new(uint256.Int)
	for i := 1; accum.Sign() > 0; i++ {
		if _, overflow := output.AddOverflow(output, accum); overflow {
			return nil, fmt.Errorf("headervalidator: FakeExponential overflow accumulating output")
		}
		if _, overflow := divisor.MulOverflow(denom, uint256.NewInt(uint64(i))); overflow {
			return nil, fmt.Errorf("headervalidator: FakeExponential overflow in denom*i")
		}
		if _, overflow := accum.MulDivOverflow(accum, num, divisor); overflow {
			return nil, fmt.Errorf("headervalidator: FakeExponential overflow in accum*num/divisor")
		}
	}
	return output.Div(output, denom), nil
}

// BlobBaseFee computes the EIP-4844 blob base fee for a block with the
// given excess blob gas.
func BlobBaseFee(excessBlobGas uint64) (*uint256.Int, error) {
	return FakeExponential(uint256.NewInt(minBlobGasPrice), uint256.NewInt(blobGasPriceUpdateFraction), excessBlobGas)
}
