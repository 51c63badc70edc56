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

package blockhash

import (
	"encoding/binary"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

const (
	legacyWindowDepth = 256
	cacheCapacity     = 32
)

// HistoryStorageAddress is the well-known EIP-2935 system contract.
var HistoryStorageAddress = common.BytesToAddress([]byte{0x00, 0x00, 0xF9, 0x08, 0x27, 0xF1, 0xC5, 0x3a, 0x10, 0xcb, 0x7A, 0x02, 0x33, 0x5B, 0x17, 0x53, 0x20, 0x00, 0x29, 0x35})

// HeaderReader is the read surface the provider needs from the block tree
// to walk parent links.
type HeaderReader interface {
	HeaderByHash(hash common.Hash) (*types.Header, bool)
}

// WorldState is the read/write surface to the EIP-2935 system contract's
// storage slots.
type WorldState interface {
	CodeSize(addr common.Address) int
	GetState(addr common.Address, slot common.Hash) (common.Hash, bool)
	SetState(addr common.Address, slot common.Hash, value common.Hash)
}

// ReleaseSpec injects fork-activation facts without a hard-coded table.
type ReleaseSpec interface {
	IsBlockhashInStateAvailable(number uint64) bool
	RingBufferSize() uint64
}

// BlockhashCache is a 32-entry cache keyed by the querying header's parent
// hash, value being its ancestor chain ordered nearest-first (index 0 =
// depth 1). Lookups do not refresh recency, so on overflow the
// oldest-inserted key is evicted.
type BlockhashCache struct {
	lru *lru.Cache[common.Hash, []common.Hash]
}

func NewBlockhashCache() *BlockhashCache {
	c, err := lru.New[common.Hash, []common.Hash](cacheCapacity)
	if err != nil {
		panic(err) // cacheCapacity is a positive constant; New only fails on size <= 0
	}
	return &BlockhashCache{lru: c}
}

func (c *BlockhashCache) get(key common.Hash) ([]common.Hash, bool) { return c.lru.Peek(key) }
func (c *BlockhashCache) put(key common.Hash, hashes []common.Hash) { c.lru.Add(key, hashes) }

func (c *BlockhashCache) Len() int { return c.lru.Len() }

// BlockhashProvider resolves BLOCKHASH(n) requests for an EVM frame
// executing on top of current.
type BlockhashProvider struct {
	headers HeaderReader
	cache   *BlockhashCache
	spec    ReleaseSpec
	world   WorldState
}

func NewBlockhashProvider(headers HeaderReader, world WorldState, spec ReleaseSpec) *BlockhashProvider {
	return &BlockhashProvider{
		headers: headers,
		cache:   NewBlockhashCache(),
		spec:    spec,
		world:   world,
	}
}

// GetBlockhash resolves the hash of block number `requested` as observed
// from `current`. Returns (hash, false, nil) — "None" — for the current or
// a future block, or a depth outside (0, 256].
func (p *BlockhashProvider) GetBlockhash(current *types.Header, requested uint64) (common.Hash, bool, error) {
	if requested >= current.Number {
		return common.Hash{}, false, nil
	}
	depth := current.Number - requested
	if depth > legacyWindowDepth {
		return common.Hash{}, false, nil
	}

	if p.spec.IsBlockhashInStateAvailable(current.Number) {
		return p.blockhashFromState(requested)
	}
	return p.legacyBlockhash(current, depth)
}

func (p *BlockhashProvider) legacyBlockhash(current *types.Header, depth uint64) (common.Hash, bool, error) {
	if depth == 1 {
		return current.ParentHash, true, nil
	}

	ancestors, ok := p.cache.get(current.ParentHash)
	if !ok {
		built, err := p.buildAncestorChain(current)
		if err != nil {
			return common.Hash{}, false, err
		}
		p.cache.put(current.ParentHash, built)
		ancestors = built
	}

	idx := int(depth - 1)
	if idx >= len(ancestors) {
		return common.Hash{}, false, fmt.Errorf("%w: depth %d beyond available ancestry", ErrMissingBlockhash, depth)
	}
	return ancestors[idx], true, nil
}

// buildAncestorChain walks parent_hash from current up to 256 deep (or to
// genesis), verifying each ancestor's number decrements by exactly 1.
// ancestors[i] is the hash at depth i+1; index 0 is current.ParentHash.
func (p *BlockhashProvider) buildAncestorChain(current *types.Header) ([]common.Hash, error) {
	hashes := make([]common.Hash, 0, legacyWindowDepth)
	hash := current.ParentHash
	number := current.Number - 1

	for len(hashes) < legacyWindowDepth {
		header, ok := p.headers.HeaderByHash(hash)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingBlockhash, hash)
		}
		if header.Number != number {
			return nil, fmt.Errorf("%w: at %s expected number %d, got %d", ErrInvalidBlockhashNumber, hash, number, header.Number)
		}
		hashes = append(hashes, hash)
		if number == 0 {
			break
		}
		hash = header.ParentHash
		number--
	}
	return hashes, nil
}

// GetLast256BlockHashes returns the 256 ancestor hashes of current in
// ascending (chronological, oldest-first) order. Requires a full 256-deep
// chain to be present.
func (p *BlockhashProvider) GetLast256BlockHashes(current *types.Header) ([]common.Hash, error) {
	ancestors, ok := p.cache.get(current.ParentHash)
	if !ok {
		built, err := p.buildAncestorChain(current)
		if err != nil {
			return nil, err
		}
		p.cache.put(current.ParentHash, built)
		ancestors = built
	}
	if len(ancestors) < legacyWindowDepth {
		return nil, fmt.Errorf("%w: only %d ancestors available", ErrMissingBlockhash, len(ancestors))
	}

	result := make([]common.Hash, legacyWindowDepth)
	for i, h := range ancestors[:legacyWindowDepth] {
		result[legacyWindowDepth-1-i] = h
	}
	return result, nil
}

func (p *BlockhashProvider) blockhashFromState(requested uint64) (common.Hash, bool, error) {
	ringSize := p.spec.RingBufferSize()
	if ringSize == 0 {
		return common.Hash{}, false, fmt.Errorf("blockhash: %w: zero ring_buffer_size", ErrInvalidBlockhashNumber)
	}
	slot := uint64ToHash(requested % ringSize)
	value, ok := p.world.GetState(HistoryStorageAddress, slot)
	if !ok || value.IsZero() {
		return common.Hash{}, false, nil
	}
	return value, true, nil
}

// ApplyBlockhashStateChanges writes the EIP-2935 ring-buffer slot for
// header's parent, but only when the system contract carries code.
func (p *BlockhashProvider) ApplyBlockhashStateChanges(header *types.Header) {
	if header.Number == 0 {
		return
	}
	if p.world.CodeSize(HistoryStorageAddress) == 0 {
		return
	}
	ringSize := p.spec.RingBufferSize()
	if ringSize == 0 {
		return
	}
	slot := uint64ToHash((header.Number - 1) % ringSize)
	p.world.SetState(HistoryStorageAddress, slot, header.ParentHash)
}

func uint64ToHash(n uint64) common.Hash {
	var h common.Hash
	binary.BigEndian.PutUint64(h[common.HashLength-8:], n)
	return h
}
