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

package chainmanager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/evmts/corechain/blockstore"
	"github.com/evmts/corechain/blocktree"
	"github.com/evmts/corechain/common"
	"github.com/evmts/corechain/core/types"
	"github.com/evmts/corechain/log"
)

// ChainManager owns the fork-choice state machine on top of a BlockTree it
// borrows, and the event bus that publishes its transitions.
type ChainManager struct {
	mu sync.RWMutex

	store *blockstore.BlockStore
	tree  *blocktree.BlockTree
	bus   *EventBus
	log   log.Logger

	genesisInitialized bool
	genesisHash        common.Hash

	headHash   common.Hash
	headNumber uint64

	bestKnownNumber uint64

	bestSuggestedHash   common.Hash
	bestSuggestedNumber uint64
	haveBestSuggested   bool

	forkChoice ForkChoice
}

func New(store *blockstore.BlockStore, tree *blocktree.BlockTree) *ChainManager {
	return &ChainManager{
		store: store,
		tree:  tree,
		bus:   NewEventBus(),
		log:   log.New("chainmanager"),
	}
}

// Bus exposes the event bus for Subscribe[T].
func (cm *ChainManager) Bus() *EventBus { return cm.bus }

// Store exposes the underlying block store, so callers can wire a
// blockhash.BlockhashProvider (via BlockStore.HeaderByHash) against the
// same chain data this manager tracks.
func (cm *ChainManager) Store() *blockstore.BlockStore { return cm.store }

// InitializeGenesis is one-shot: failing with ErrGenesisAlreadyInitialized
// on a second call, ErrInvalidGenesisBlock when g is not a true genesis.
func (cm *ChainManager) InitializeGenesis(g *types.Block) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.genesisInitialized {
		return ErrGenesisAlreadyInitialized
	}
	if g == nil || g.Header == nil || g.Header.Number != 0 || !g.Header.ParentHash.IsZero() {
		return ErrInvalidGenesisBlock
	}

	if err := cm.tree.PutBlock(g); err != nil {
		return err
	}
	if err := cm.tree.SetCanonicalHead(g.Hash); err != nil {
		return err
	}

	cm.genesisInitialized = true
	cm.genesisHash = g.Hash
	cm.headHash = g.Hash
	cm.headNumber = 0
	cm.bestKnownNumber = 0

	cm.log.Info("genesis initialized", "hash", g.Hash.String())
	Publish(cm.bus, GenesisInitialized{Hash: g.Hash})
	Publish(cm.bus, CanonicalHeadUpdated{Hash: g.Hash, Number: 0})
	return nil
}

// SetCanonicalHead walks the canonical chain, verifying it resolves to the
// initialized genesis, then updates state and publishes
// CanonicalHeadUpdated; the map update precedes publication.
func (cm *ChainManager) SetCanonicalHead(h common.Hash) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.genesisInitialized {
		return ErrGenesisNotInitialized
	}

	block, ok := cm.tree.GetBlock(h)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, h)
	}

	if err := cm.validateChainTo(h); err != nil {
		return err
	}

	if err := cm.tree.SetCanonicalHead(h); err != nil {
		if errors.Is(err, blocktree.ErrBlockNotFound) {
			return fmt.Errorf("%w: %s", ErrBlockNotFound, h)
		}
		if errors.Is(err, blocktree.ErrCannotSetOrphanHead) || errors.Is(err, blocktree.ErrChainDiscontinuous) {
			return fmt.Errorf("%w: %s", ErrCanonicalChainInvalid, err)
		}
		return err
	}

	genesisAtZero, ok := cm.tree.CanonicalHashAt(0)
	if !ok || genesisAtZero != cm.genesisHash {
		return ErrGenesisMismatch
	}

	cm.headHash = h
	cm.headNumber = block.Header.Number
	if block.Header.Number > cm.bestKnownNumber {
		cm.bestKnownNumber = block.Header.Number
	}

	cm.log.Info("canonical head updated", "hash", h.String(), "number", block.Header.Number)
	Publish(cm.bus, CanonicalHeadUpdated{Hash: h, Number: block.Header.Number})
	return nil
}

// ForkChoiceUpdated requires head to be present and its chain to validate,
// and safe/finalized (if supplied) to be present; it updates only the
// fork-choice pointers.
func (cm *ChainManager) ForkChoiceUpdated(u ForkChoice) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.genesisInitialized {
		return ErrGenesisNotInitialized
	}

	if err := cm.validateChainTo(u.Head); err != nil {
		return err
	}
	if !u.Safe.IsZero() {
		if !cm.tree.HasBlock(u.Safe) {
			return fmt.Errorf("%w: safe %s", ErrBlockNotFound, u.Safe)
		}
	}
	if !u.Finalized.IsZero() {
		if !cm.tree.HasBlock(u.Finalized) {
			return fmt.Errorf("%w: finalized %s", ErrBlockNotFound, u.Finalized)
		}
	}

	cm.forkChoice = u
	cm.log.Info("fork choice updated", "head", u.Head.String(), "safe", u.Safe.String(), "finalized", u.Finalized.String())
	Publish(cm.bus, ForkChoiceUpdated{ForkChoice: u})
	return nil
}

// validateChainTo walks parent_hash from hash down to genesis without
// mutating the canonical map, verifying contiguity and that it resolves to
// the initialized genesis.
func (cm *ChainManager) validateChainTo(hash common.Hash) error {
	block, ok := cm.tree.GetBlock(hash)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, hash)
	}
	cur := block
	for {
		if cur.Header.Number == 0 {
			if cur.Hash != cm.genesisHash {
				return ErrGenesisMismatch
			}
			return nil
		}
		parent, ok := cm.store.Get(cur.Header.ParentHash)
		if !ok {
			return fmt.Errorf("%w: missing ancestor %s", ErrCanonicalChainInvalid, cur.Header.ParentHash)
		}
		if parent.Header.Number != cur.Header.Number-1 {
			return fmt.Errorf("%w: non-contiguous ancestor %s", ErrCanonicalChainInvalid, parent.Hash)
		}
		cur = parent
	}
}

// SuggestBlock inserts b, publishes BlockSuggested, and promotes it to
// best-suggested (publishing BestSuggestedBlock) if it is the highest
// number seen.
func (cm *ChainManager) SuggestBlock(b *types.Block) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if err := cm.tree.PutBlock(b); err != nil {
		return err
	}
	if b.Header.Number > cm.bestKnownNumber {
		cm.bestKnownNumber = b.Header.Number
	}

	Publish(cm.bus, BlockSuggested{Hash: b.Hash, Number: b.Header.Number})

	if !cm.haveBestSuggested || b.Header.Number > cm.bestSuggestedNumber {
		cm.bestSuggestedHash = b.Hash
		cm.bestSuggestedNumber = b.Header.Number
		cm.haveBestSuggested = true
		Publish(cm.bus, BestSuggestedBlock{Hash: b.Hash, Number: b.Header.Number})
	}
	return nil
}

func (cm *ChainManager) HeadHash() common.Hash {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.headHash
}

func (cm *ChainManager) HeadNumber() uint64 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.headNumber
}

func (cm *ChainManager) GenesisHash() common.Hash {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.genesisHash
}

func (cm *ChainManager) ForkChoice() ForkChoice {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.forkChoice
}

func (cm *ChainManager) BestSuggested() (common.Hash, uint64, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.bestSuggestedHash, cm.bestSuggestedNumber, cm.haveBestSuggested
}
