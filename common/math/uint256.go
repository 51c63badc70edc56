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

package math

import "github.com/holiman/uint256"

// MaxUint256 is the saturation value used by broadcast-threshold fallback
// arithmetic when even the fallback path overflows.
var MaxUint256 = new(uint256.Int).Not(uint256.NewInt(0))

// CheckedMulDiv256 computes floor(x*y/z) over 256-bit unsigned integers,
// returning ok=false on multiplication overflow.
func CheckedMulDiv256(x, y, z *uint256.Int) (result *uint256.Int, ok bool) {
	prod, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, false
	}
	if z.IsZero() {
		return nil, false
	}
	return new(uint256.Int).Div(prod, z), true
}
