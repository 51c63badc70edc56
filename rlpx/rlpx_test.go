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

package rlpx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnappyLengthAtExactCap(t *testing.T) {
	value, err := ValidateSnappyLength([]byte{0x80, 0x80, 0x80, 0x08})
	require.NoError(t, err)
	require.Equal(t, uint64(RlpxMaxSnappyUncompressedLength), value)
}

func TestSnappyLengthExceedsCap(t *testing.T) {
	_, err := ValidateSnappyLength([]byte{0x81, 0x80, 0x80, 0x08})
	require.Error(t, err)
	var exceeded *LengthExceededError
	require.ErrorAs(t, err, &exceeded)
	require.EqualValues(t, RlpxMaxSnappyUncompressedLength+1, exceeded.Actual)
	require.EqualValues(t, RlpxMaxSnappyUncompressedLength, exceeded.Max)
}

func TestSnappyLengthEmptyPayload(t *testing.T) {
	_, err := ValidateSnappyLength(nil)
	require.ErrorIs(t, err, ErrEmptyPayload)
}

func TestSnappyLengthTruncated(t *testing.T) {
	_, err := ValidateSnappyLength([]byte{0x80})
	require.ErrorIs(t, err, ErrTruncatedLength)
}

func TestSnappyLengthFifthByteOverflow(t *testing.T) {
	_, err := ValidateSnappyLength([]byte{0x80, 0x80, 0x80, 0x80, 0x80})
	require.ErrorIs(t, err, ErrLengthOverflow)
}

// TestNegotiateHelloLiteralScenario checks message-ID range assignment
// against a worked-out example with multiple shared capabilities.
func TestNegotiateHelloLiteralScenario(t *testing.T) {
	local := []Capability{
		{Name: "snap", Version: 1, MessageIDSpaceSize: 8},
		{Name: "eth", Version: 66, MessageIDSpaceSize: 17},
		{Name: "eth", Version: 68, MessageIDSpaceSize: 17},
		{Name: "nodedata", Version: 1, MessageIDSpaceSize: 2},
	}
	remote := []RemoteCapability{
		{Name: "les", Version: 2},
		{Name: "eth", Version: 66},
		{Name: "eth", Version: 68},
		{Name: "snap", Version: 1},
	}

	negotiated, next, err := NegotiateHello(local, remote)
	require.NoError(t, err)
	require.Equal(t, uint64(0x29), next)
	require.Len(t, negotiated, 2)

	require.Equal(t, "eth", negotiated[0].Name)
	require.Equal(t, uint64(68), negotiated[0].Version)
	require.Equal(t, uint64(0x10), negotiated[0].Offset)
	require.Equal(t, uint64(0x20), negotiated[0].RangeEnd)

	require.Equal(t, "snap", negotiated[1].Name)
	require.Equal(t, uint64(1), negotiated[1].Version)
	require.Equal(t, uint64(0x21), negotiated[1].Offset)
	require.Equal(t, uint64(0x28), negotiated[1].RangeEnd)
}

func TestNegotiateHelloRejectsDuplicateSpaceSize(t *testing.T) {
	local := []Capability{
		{Name: "eth", Version: 66, MessageIDSpaceSize: 17},
		{Name: "eth", Version: 66, MessageIDSpaceSize: 9},
	}
	_, _, err := NegotiateHello(local, nil)
	require.ErrorIs(t, err, ErrDuplicateCapabilitySpace)
}

func TestNegotiateHelloRejectsInvalidName(t *testing.T) {
	local := []Capability{{Name: "toolongname", Version: 1, MessageIDSpaceSize: 1}}
	_, _, err := NegotiateHello(local, nil)
	require.ErrorIs(t, err, ErrCapabilityValidation)
}
