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

package blocktree

import (
	"fmt"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/evmts/corechain/blockstore"
	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
)

var instanceCounter atomic.Uint64

// ReadOnlyBlockTree is the read-through surface a BlockTreeOverlay composes
// its base on.
type ReadOnlyBlockTree interface {
	common.DifferentInstance

	HasBlock(hash common.Hash) bool
	IsOrphan(hash common.Hash) bool
	GetBlock(hash common.Hash) (*types.Block, bool)
	CanonicalHashAt(number uint64) (common.Hash, bool)
	HeadBlockNumber() (uint64, bool)
	Count() int
	OrphanCount() int
}

// BlockTree owns the canonical chain map and the orphan index layered on a
// shared BlockStore.
type BlockTree struct {
	mu sync.RWMutex

	store *blockstore.BlockStore

	canonicalChain  map[uint64]common.Hash
	orphans         mapset.Set[common.Hash]
	orphansByParent map[common.Hash]mapset.Set[common.Hash]

	id string
}

// New creates a BlockTree borrowing store (shared, read-mostly).
func New(store *blockstore.BlockStore) *BlockTree {
	return &BlockTree{
		store:           store,
		canonicalChain:  make(map[uint64]common.Hash),
		orphans:         mapset.NewThreadUnsafeSet[common.Hash](),
		orphansByParent: make(map[common.Hash]mapset.Set[common.Hash]),
		id:              fmt.Sprintf("blocktree-%d", instanceCounter.Add(1)),
	}
}

func (t *BlockTree) InstanceID() string { return t.id }

// PutBlock inserts b, marking it orphan if its parent is unknown and
// otherwise resolving any of its descendants already waiting as orphans.
func (t *BlockTree) PutBlock(b *types.Block) error {
	if b == nil || b.Header == nil {
		return fmt.Errorf("blocktree: %w: nil block", ErrBlockNotFound)
	}
	if t.store.Has(b.Hash) {
		return nil
	}

	isGenesis := b.Header.Number == 0
	hasParent := t.store.Has(b.Header.ParentHash)
	orphan := !isGenesis && !hasParent

	t.mu.Lock()
	if orphan {
		t.orphans.Add(b.Hash)
		children, ok := t.orphansByParent[b.Header.ParentHash]
		if !ok {
			children = mapset.NewThreadUnsafeSet[common.Hash]()
			t.orphansByParent[b.Header.ParentHash] = children
		}
		children.Add(b.Hash)
	}
	t.mu.Unlock()

	if err := t.store.Put(b); err != nil {
		return err
	}

	if !orphan {
		t.resolveCascade(b.Hash)
	}
	return nil
}

// resolveCascade performs a BFS over orphansByParent rooted at hash. The
// queue is an explicit FIFO slice (no recursion); the orphan set strictly
// shrinks and every hash is visited at most once.
func (t *BlockTree) resolveCascade(hash common.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()

	queue := []common.Hash{hash}
	visited := make(map[common.Hash]struct{}, len(t.orphans.ToSlice()))

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if _, seen := visited[h]; seen {
			continue
		}
		visited[h] = struct{}{}

		children, ok := t.orphansByParent[h]
		if !ok {
			continue
		}
		delete(t.orphansByParent, h)
		for _, child := range children.ToSlice() {
			t.orphans.Remove(child)
			queue = append(queue, child)
		}
	}
}

// SetCanonicalHead walks parent links from h down to number 0, verifying
// number contiguity, then atomically swaps the canonical chain map for the
// walk's result.
func (t *BlockTree) SetCanonicalHead(h common.Hash) error {
	t.mu.RLock()
	isOrphan := t.orphans.Contains(h)
	t.mu.RUnlock()
	if isOrphan {
		return fmt.Errorf("blocktree: %w: %s", ErrCannotSetOrphanHead, h)
	}

	head, ok := t.store.Get(h)
	if !ok {
		return fmt.Errorf("blocktree: %w: %s", ErrBlockNotFound, h)
	}

	scratch := make(map[uint64]common.Hash, head.Header.Number+1)
	cur := head
	for {
		scratch[cur.Header.Number] = cur.Hash
		if cur.Header.Number == 0 {
			break
		}
		parent, ok := t.store.Get(cur.Header.ParentHash)
		if !ok {
			return fmt.Errorf("blocktree: %w: %s", ErrBlockNotFound, cur.Header.ParentHash)
		}
		if parent.Header.Number != cur.Header.Number-1 {
			return fmt.Errorf("blocktree: %w: %s has number %d, expected %d", ErrChainDiscontinuous, parent.Hash, parent.Header.Number, cur.Header.Number-1)
		}
		cur = parent
	}

	t.mu.Lock()
	t.canonicalChain = scratch
	t.mu.Unlock()
	return nil
}

// HeadBlockNumber returns the maximum key of the canonical chain map.
func (t *BlockTree) HeadBlockNumber() (uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.canonicalChain) == 0 {
		return 0, false
	}
	var max uint64
	first := true
	for n := range t.canonicalChain {
		if first || n > max {
			max = n
			first = false
		}
	}
	return max, true
}

func (t *BlockTree) CanonicalHashAt(number uint64) (common.Hash, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.canonicalChain[number]
	return h, ok
}

func (t *BlockTree) HasBlock(hash common.Hash) bool { return t.store.Has(hash) }

func (t *BlockTree) GetBlock(hash common.Hash) (*types.Block, bool) { return t.store.Get(hash) }

func (t *BlockTree) IsOrphan(hash common.Hash) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.orphans.Contains(hash)
}

func (t *BlockTree) OrphanCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.orphans.Cardinality()
}

func (t *BlockTree) Count() int { return t.store.Count() }
