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

package blockstore

import (
	"fmt"
	"sync"

	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

// BlockStore is a hash-keyed, idempotent block store. Fixed-size Hash
// arrays are directly usable as Go map keys, so no hex re-encoding is
// required.
type BlockStore struct {
	mu     sync.RWMutex
	blocks map[common.Hash]*types.Block
}

func New() *BlockStore {
	return &BlockStore{blocks: make(map[common.Hash]*types.Block)}
}

// Get returns the block for hash and whether it was found.
func (s *BlockStore) Get(hash common.Hash) (*types.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[hash]
	return b, ok
}

func (s *BlockStore) Has(hash common.Hash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[hash]
	return ok
}

// HeaderByHash projects the stored block down to its header, satisfying
// blockhash.HeaderReader so a BlockhashProvider can walk ancestry directly
// against the chain's block store.
func (s *BlockStore) HeaderByHash(hash common.Hash) (*types.Header, bool) {
	b, ok := s.Get(hash)
	if !ok {
		return nil, false
	}
	return b.Header, true
}

// Put inserts block, keyed by block.Hash. Re-putting an existing hash is a
// no-op, never an error.
func (s *BlockStore) Put(block *types.Block) error {
	if block == nil || block.Header == nil {
		return fmt.Errorf("%w: nil block or header", ErrInvalidBlock)
	}
	if block.Hash.IsZero() {
		return fmt.Errorf("%w: zero hash", ErrInvalidBlockHash)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blocks[block.Hash]; exists {
		return nil
	}
	s.blocks[block.Hash] = block
	return nil
}

func (s *BlockStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

// HeaderStore mirrors BlockStore for headers-only chains.
type HeaderStore struct {
	mu      sync.RWMutex
	headers map[common.Hash]*types.Header
}

func NewHeaderStore() *HeaderStore {
	return &HeaderStore{headers: make(map[common.Hash]*types.Header)}
}

func (s *HeaderStore) Get(hash common.Hash) (*types.Header, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.headers[hash]
	return h, ok
}

// HeaderByHash is an alias for Get, satisfying blockhash.HeaderReader for
// headers-only (light) chains that never populate a BlockStore.
func (s *HeaderStore) HeaderByHash(hash common.Hash) (*types.Header, bool) {
	return s.Get(hash)
}

func (s *HeaderStore) Has(hash common.Hash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.headers[hash]
	return ok
}

func (s *HeaderStore) PutHeader(hash common.Hash, header *types.Header) error {
	if header == nil {
		return fmt.Errorf("%w: nil header", ErrInvalidBlock)
	}
	if hash.IsZero() {
		return fmt.Errorf("%w: zero hash", ErrInvalidBlockHash)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.headers[hash]; exists {
		return nil
	}
	s.headers[hash] = header
	return nil
}

func (s *HeaderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.headers)
}
