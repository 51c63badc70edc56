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
	"fmt"
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// FirstCapabilityMessageID is the first reserved subprotocol message id;
// 0x00..0x0F is reserved for p2p control.
const FirstCapabilityMessageID = 0x10

// Capability is a locally supported subprotocol.
type Capability struct {
	Name               string
	Version            uint64
	MessageIDSpaceSize uint64
}

// RemoteCapability is a peer-advertised subprotocol, lacking message-ID
// space size (that is a purely local allocation decision).
type RemoteCapability struct {
	Name    string
	Version uint64
}

// NegotiatedCapability is one entry of the negotiated, sorted result.
type NegotiatedCapability struct {
	Name               string
	Version            uint64
	MessageIDSpaceSize uint64
	Offset             uint64
	RangeEnd           uint64
}

// NegotiateHello selects the shared capabilities between local and remote
// and assigns contiguous message-ID ranges, highest shared version winning
// for each name.
func NegotiateHello(local []Capability, remote []RemoteCapability) ([]NegotiatedCapability, uint64, error) {
	if err := validateLocal(local); err != nil {
		return nil, 0, err
	}
	if err := validateRemote(remote); err != nil {
		return nil, 0, err
	}

	localByKey := make(map[capKey]uint64, len(local))
	for _, c := range local {
		localByKey[capKey{c.Name, c.Version}] = c.MessageIDSpaceSize
	}

	type candidate struct {
		version   uint64
		spaceSize uint64
	}
	bestByName := make(map[string]candidate)
	names := mapset.NewThreadUnsafeSet[string]()

	for _, r := range remote {
		spaceSize, ok := localByKey[capKey{r.Name, r.Version}]
		if !ok {
			continue
		}
		names.Add(r.Name)
		cur, exists := bestByName[r.Name]
		if !exists || r.Version > cur.version {
			bestByName[r.Name] = candidate{version: r.Version, spaceSize: spaceSize}
		}
	}

	sortedNames := names.ToSlice()
	sort.Strings(sortedNames)

	result := make([]NegotiatedCapability, 0, len(sortedNames))
	next := uint64(FirstCapabilityMessageID)
	for _, name := range sortedNames {
		c := bestByName[name]
		if c.spaceSize > math.MaxUint64-next {
			return nil, 0, fmt.Errorf("%w: capability %s", ErrMessageIDAllocation, name)
		}
		offset := next
		rangeEnd := offset + c.spaceSize - 1
		next = offset + c.spaceSize
		result = append(result, NegotiatedCapability{
			Name:               name,
			Version:            c.version,
			MessageIDSpaceSize: c.spaceSize,
			Offset:             offset,
			RangeEnd:           rangeEnd,
		})
	}

	return result, next, nil
}

type capKey struct {
	name    string
	version uint64
}

func validateLocal(local []Capability) error {
	seen := make(map[capKey]uint64, len(local))
	for _, c := range local {
		if err := validateName(c.Name); err != nil {
			return err
		}
		if c.MessageIDSpaceSize == 0 {
			return fmt.Errorf("%w: %s/%d has zero message id space size", ErrCapabilityValidation, c.Name, c.Version)
		}
		key := capKey{c.Name, c.Version}
		if prior, ok := seen[key]; ok && prior != c.MessageIDSpaceSize {
			return fmt.Errorf("%w: %s/%d", ErrDuplicateCapabilitySpace, c.Name, c.Version)
		}
		seen[key] = c.MessageIDSpaceSize
	}
	return nil
}

func validateRemote(remote []RemoteCapability) error {
	for _, c := range remote {
		if err := validateName(c.Name); err != nil {
			return err
		}
	}
	return nil
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: empty name", ErrCapabilityValidation)
	}
	if len(name) > 8 {
		return fmt.Errorf("%w: name %q exceeds 8 bytes", ErrCapabilityValidation, name)
	}
	for _, b := range []byte(name) {
		if b < 0x21 || b > 0x7E {
			return fmt.Errorf("%w: name %q has non-printable byte", ErrCapabilityValidation, name)
		}
	}
	return nil
}
